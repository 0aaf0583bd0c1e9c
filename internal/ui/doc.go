package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the item store and renders the
// stats header, item cards, filter tabs, dialogs, and settings. All UI
// strings are localized via Localization.
