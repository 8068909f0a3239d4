package main

import (
	gateway "github.com/soffa-io/salesforce-gateway"
	"github.com/soffa-io/salesforce-gateway/cli"
)

func main() {
	cli.Execute(gateway.Name, gateway.Version, func(env string) *gateway.App {
		return gateway.NewApp(env)
	})
}
