// Package main FoodLoop marketplace API
//
//	@title			FoodLoop API
//	@version		1.0.0
//	@description	FoodLoop is a marketplace for food-waste exchange: producers list surplus food waste, recyclers and sustainability partners respond to listings, and an impact dashboard aggregates environmental metrics
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	https://foodloop.dev/support
//	@contact.email	support@foodloop.dev
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host			localhost:3000
//	@BasePath		/api/v1
package main

import "github.com/foodloop/foodloop/internal"

//go:generate swag init --parseDependency --outputTypes go -g ./main.go -o ./internal/server/docs

func main() {
	internal.Run()
}
