package model

// Package model defines domain data structures used across the app: expiry
// items, categories, user alert settings, and status enums. Structures are
// designed for direct JSON persistence and explicit derived-state computation.
