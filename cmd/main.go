// cmd/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"rpbank/app"
	"rpbank/config"
	"rpbank/logger"
	"rpbank/model"
	"rpbank/service"
	"strings"
	"time"
)

// @title           rpbank API
// @version         1.0
// @description     Economic ledger for a role-play community: accounts, transfers, loans, payroll and shop.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := mintToken(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	app.Run()
}

// mintToken prints a bearer token for the chat front-end, signed with the
// configured secret.
func mintToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	identity := fs.String("identity", "", "caller identity (required)")
	caps := fs.String("caps", "", "comma separated capabilities: staff, economy")
	roles := fs.String("roles", "", "comma separated role ids")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *identity == "" {
		return fmt.Errorf("-identity is required")
	}

	logger.Init()
	if err := config.LoadConfig("."); err != nil {
		return err
	}

	var capabilities []model.Capability
	for _, c := range splitList(*caps) {
		capabilities = append(capabilities, model.Capability(c))
	}

	token, err := service.NewAuthService(config.AppConfig.JWT.SecretKey).
		GenerateToken(*identity, capabilities, splitList(*roles), *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
