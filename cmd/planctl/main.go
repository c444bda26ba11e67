// Command planctl is a small terminal client for the pantryplan server.
//
// Usage:
//
//	planctl [-url http://localhost:8080] <command> [args]
//
// Commands:
//
//	show              print the current document summary
//	list              print the visible shopping list
//	pick <n>          pick n random meals for the plan
//	add-extra <item>  add a manual purchase item
//	pantry <text>     replace the pantry exclusion text
//	logout            revoke the session
//
// The household password is read from PANTRYPLAN_PASSWORD.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
	"github.com/pantryplan/pantryplan-backend/internal/planner"
	"github.com/pantryplan/pantryplan-backend/internal/shopping"
	"github.com/pantryplan/pantryplan-backend/pkg/syncclient"
)

func main() {
	url := flag.String("url", "http://localhost:8080", "server base URL")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := syncclient.New(*url)
	defer client.Close()

	client.Start(ctx)
	if client.State() != syncclient.StateAuthenticated {
		if err := client.LoadError(); err != nil {
			log.Fatalf("connect to %s: %v", *url, err)
		}
		password := os.Getenv("PANTRYPLAN_PASSWORD")
		if password == "" {
			log.Fatal("not logged in and PANTRYPLAN_PASSWORD is not set")
		}
		if err := client.Login(ctx, password); err != nil {
			log.Fatal(err)
		}
	}

	if err := run(ctx, client, args); err != nil {
		log.Fatal(err)
	}

	client.Flush(ctx)
}

func run(ctx context.Context, client *syncclient.Client, args []string) error {
	switch cmd, rest := args[0], args[1:]; cmd {
	case "show":
		return show(client)
	case "list":
		return list(client)
	case "pick":
		if len(rest) != 1 {
			return fmt.Errorf("usage: pick <n>")
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("pick: %q is not a number", rest[0])
		}
		client.Mutate(func(doc *domain.Document) {
			doc.Picked = planner.Sample(doc.Recipes, n)
			doc.HiddenShoppingKeys = []string{}
		})
		return list(client)
	case "add-extra":
		if len(rest) == 0 {
			return fmt.Errorf("usage: add-extra <item>")
		}
		item := strings.TrimSpace(strings.Join(rest, " "))
		if item == "" {
			return fmt.Errorf("add-extra: item is empty")
		}
		client.Mutate(func(doc *domain.Document) {
			if doc.ExtrasText == "" {
				doc.ExtrasText = item
			} else {
				doc.ExtrasText += "\n" + item
			}
		})
		return list(client)
	case "pantry":
		client.Mutate(func(doc *domain.Document) {
			doc.PantryText = strings.Join(rest, " ")
		})
		return list(client)
	case "logout":
		return client.Logout(ctx)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func show(client *syncclient.Client) error {
	doc := client.Document()
	if doc == nil {
		return fmt.Errorf("no document loaded")
	}

	fmt.Printf("Recipes (%d):\n", len(doc.Recipes))
	for _, r := range doc.Recipes {
		fmt.Printf("  %s (%d ingredients)\n", r.Name, len(r.Ingredients))
	}

	fmt.Printf("Picked (%d):\n", len(doc.Picked))
	for _, p := range doc.Picked {
		fmt.Printf("  %s\n", p.Name)
	}

	if doc.PantryText != "" {
		fmt.Println("Pantry:")
		for _, line := range shopping.ParseLines(doc.PantryText) {
			fmt.Printf("  %s\n", line)
		}
	}
	return nil
}

func list(client *syncclient.Client) error {
	doc := client.Document()
	if doc == nil {
		return fmt.Errorf("no document loaded")
	}

	entries := shopping.Build(doc)
	if len(entries) == 0 {
		fmt.Println("Shopping list is empty.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("  %g %s %s\n", e.Qty, e.Unit, e.Name)
	}
	return nil
}
