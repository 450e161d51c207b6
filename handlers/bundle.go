// File: handlers/bundle.go
package handlers

// HandlerBundle aggregates the HTTP handlers routes are registered with.
type HandlerBundle struct {
	FoodMenu *FoodMenuHandler
}
