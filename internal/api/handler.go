package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"bordbuch-backend/internal/access"
	"bordbuch-backend/internal/store"
)

// Notifier dispatches a push-notification job for a machine code.
type Notifier interface {
	Dispatch(automatCode string)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store     store.Store
	directory access.MachineDirectory
	resolver  *access.Resolver
	webpush   *webpush.Options
	notifier  Notifier
}

// NewHandler creates a new API handler. The directory may be the cached
// decorator; the notifier may be nil when push is not configured.
func NewHandler(s store.Store, directory access.MachineDirectory, webpushOptions *webpush.Options, notifier Notifier) *Handler {
	return &Handler{
		store:     s,
		directory: directory,
		resolver:  access.NewResolver(s, directory),
		webpush:   webpushOptions,
		notifier:  notifier,
	}
}
