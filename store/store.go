// Package store holds the client-side copy of every entity the panel works
// with. Each store owns one slice of state and the async operations that
// mutate it through the API clients; views read snapshots and dispatch
// operations, never touching state directly.
package store

import (
	"errors"

	"admin-panel-client/gateway"
	"admin-panel-client/models"
)

// Action is the transient status annotation recorded by the cart store for
// UI feedback. It carries no correctness guarantee and is not a concurrency
// guard.
type Action string

const (
	ActionIdle     Action = ""
	ActionAdding   Action = "adding"
	ActionAdded    Action = "added"
	ActionUpdating Action = "updating"
	ActionUpdated  Action = "updated"
	ActionRemoving Action = "removing"
	ActionRemoved  Action = "removed"
	ActionClearing Action = "clearing"
	ActionCleared  Action = "cleared"
	ActionError    Action = "error"
)

// ActivityPublisher receives cart mutations after server confirmation.
// Publish failures never influence cart state.
type ActivityPublisher interface {
	PublishCartActivity(activity models.CartActivity) error
}

func errMessage(err error, fallback string) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
