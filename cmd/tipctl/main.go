// tipctl is a command-line stand-in for the mobile client. It drives tip
// page creation and lookup through the resolution policy, so it works with
// or without a reachable backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"tipjar/internal/client"
	"tipjar/internal/config"
	"tipjar/internal/logger"
	"tipjar/internal/models"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() string {
	return `usage: tipctl <command> [flags]

commands:
  create   create a tip page (-name, -message, and at least one method flag)
  get      fetch a tip page by token
  links    list pages created from this device
  rm       delete a bookmark from the local list
  url      print the shareable form of a token`
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("%s", usage())
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	cli, err := client.New(client.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
		Dir:     cfg.ClientDir,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "create":
		return runCreate(ctx, cli, os.Args[2:])
	case "get":
		return runGet(ctx, cli, os.Args[2:])
	case "links":
		return runLinks(cli)
	case "rm":
		if len(os.Args) < 3 {
			return fmt.Errorf("usage: tipctl rm <token>")
		}
		return cli.DeleteLink(os.Args[2])
	case "url":
		if len(os.Args) < 3 {
			return fmt.Errorf("usage: tipctl url <token>")
		}
		fmt.Println(cli.TipPageURL(os.Args[2]))
		return nil
	default:
		return fmt.Errorf("unknown command %q\n\n%s", os.Args[1], usage())
	}
}

func runCreate(ctx context.Context, cli *client.Client, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	name := fs.String("name", "", "display name (required)")
	message := fs.String("message", "", "message shown on the page")
	bitcoin := fs.String("bitcoin", "", "bitcoin address")
	lightning := fs.String("lightning", "", "lightning address")
	monero := fs.String("monero", "", "monero address")
	venmo := fs.String("venmo", "", "venmo username")
	cashapp := fs.String("cashapp", "", "cash app username")
	paypal := fs.String("paypal", "", "paypal username")
	if err := fs.Parse(args); err != nil {
		return err
	}

	methods := models.PaymentMethods{}
	addresses := map[models.MethodKind]string{
		models.MethodBitcoin:   *bitcoin,
		models.MethodLightning: *lightning,
		models.MethodMonero:    *monero,
	}
	for kind, addr := range addresses {
		if addr != "" {
			methods[kind] = models.PaymentMethod{Enabled: true, Address: addr}
		}
	}
	usernames := map[models.MethodKind]string{
		models.MethodVenmo:   *venmo,
		models.MethodCashApp: *cashapp,
		models.MethodPayPal:  *paypal,
	}
	for kind, user := range usernames {
		if user != "" {
			methods[kind] = models.PaymentMethod{Enabled: true, Username: user}
		}
	}

	res, err := cli.CreateTipPage(ctx, models.TipPageInput{
		DisplayName:    *name,
		Message:        *message,
		PaymentMethods: methods,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Token: %s\n", res.Token)
	if res.Origin.Offline() {
		fmt.Println("Created offline: this page only resolves on this device.")
	}
	fmt.Printf("Share: %s\n", cli.TipPageURL(res.Token))
	return nil
}

func runGet(ctx context.Context, cli *client.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: tipctl get <token>")
	}

	res, err := cli.GetTipPage(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s\n", res.DisplayName, res.Message)
	for kind, method := range res.PaymentMethods {
		if method.Address != "" {
			fmt.Printf("  %s: %s\n", kind, method.Address)
		} else {
			fmt.Printf("  %s: %s\n", kind, method.Username)
		}
	}
	if res.Origin.Offline() {
		fmt.Println("(served from this device's local store)")
	}
	return nil
}

func runLinks(cli *client.Client) error {
	links, err := cli.Links()
	if err != nil {
		return err
	}
	if len(links) == 0 {
		fmt.Println("No links yet.")
		return nil
	}
	for _, link := range links {
		fmt.Printf("%s  %s  %s\n", link.CreatedAt.Format("2006-01-02 15:04"), link.Token, link.DisplayName)
	}
	return nil
}
