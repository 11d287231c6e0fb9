// Package graphql defines the admin read-only GraphQL schema: products,
// orders and low-stock queries, mounted behind the admin auth middleware.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/services"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/config"
	gql "github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/graphql"
)

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.Int},
		"name":       &graphql.Field{Type: graphql.String},
		"price":      &graphql.Field{Type: graphql.Float},
		"stock":      &graphql.Field{Type: graphql.Int},
		"image_path": &graphql.Field{Type: graphql.String},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":             &graphql.Field{Type: graphql.Int},
		"customer_name":  &graphql.Field{Type: graphql.String},
		"phone":          &graphql.Field{Type: graphql.String},
		"address":        &graphql.Field{Type: graphql.String},
		"pincode":        &graphql.Field{Type: graphql.String},
		"product_id":     &graphql.Field{Type: graphql.Int},
		"product_name":   &graphql.Field{Type: graphql.String},
		"quantity":       &graphql.Field{Type: graphql.Int},
		"total_price":    &graphql.Field{Type: graphql.Float},
		"payment_method": &graphql.Field{Type: graphql.String},
	},
})

// NewSchema builds the admin query schema over the given services.
func NewSchema(catalog *services.CatalogService, orders *services.OrderService) (graphql.Schema, error) {
	root := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.ListProducts(p.Context)
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					return catalog.GetProduct(p.Context, uint(id))
				},
			},
			"orders": &graphql.Field{
				Type: graphql.NewList(orderType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return orders.ListOrders(p.Context)
				},
			},
			"lowStock": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"threshold": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					threshold, ok := p.Args["threshold"].(int)
					if !ok {
						threshold = config.LowStockThreshold()
					}
					return catalog.LowStock(threshold)
				},
			},
		},
	})

	return gql.NewSchema(root)
}
