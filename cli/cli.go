package cli

import (
	gateway "github.com/soffa-io/salesforce-gateway"
	"github.com/soffa-io/salesforce-gateway/h"
	"github.com/soffa-io/salesforce-gateway/log"
	"github.com/spf13/cobra"
	"net"
)

func Execute(name string, version string, createApp func(env string) *gateway.App) {
	cobra.OnInitialize()
	var rootCmd = &cobra.Command{
		Use:     name,
		Version: version,
	}
	rootCmd.AddCommand(createServerCmd(createApp))
	_ = rootCmd.Execute()
}

func createServerCmd(createApp func(env string) *gateway.App) *cobra.Command {
	var port int
	var randomPort bool
	var envName string

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the service in server mode",
		Run: func(cmd *cobra.Command, args []string) {
			app := createApp(envName)
			if randomPort {
				addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
				log.FatalIf(err)
				l, err := net.ListenTCP("tcp", addr)
				log.FatalIf(err)
				defer func(l *net.TCPListener) {
					_ = l.Close()
				}(l)
				port = l.Addr().(*net.TCPAddr).Port
			}
			app.Start(port)
		},
	}
	cmd.Flags().StringVarP(&envName, "env", "e", h.Getenv("ENV", "prod"), "active environment profile")
	cmd.Flags().IntVarP(&port, "port", "p", h.Getenvi("PORT", 8080), "server port")
	cmd.Flags().BoolVarP(&randomPort, "random-port", "r", false, "start the server on a random available port")

	return cmd
}
