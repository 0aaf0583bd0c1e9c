package advice

import "context"

// Provider defines the external text-generation boundary. Implementations
// return a short storage tip or an error; callers are expected to collapse
// any error into a fallback string.
type Provider interface {
	StorageTip(ctx context.Context, itemName, category string) (string, error)
}
