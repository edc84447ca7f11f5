// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

// RecipeMetrics receives observations from the recipe use cases
type RecipeMetrics interface {
	RecordRecipeAdded()
	RecordRecipeRejected(reason string)
	RecordQuickFilter(matches int)
	RecordRecipeDoubled()
}
