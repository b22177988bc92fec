package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/roastery/storefront/internal/infrastructure/config"
	"github.com/roastery/storefront/internal/infrastructure/logger"
	"github.com/roastery/storefront/internal/storefront"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// The REPL owns stdout, so logs go to stderr by default
	logOutput := cfg.Log.Output
	if logOutput == "" || logOutput == "stdout" {
		logOutput = "stderr"
	}
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     logOutput,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	client := storefront.NewClient(cfg.Client.BaseURL, cfg.Client.RequestTimeout)
	store := storefront.NewCartStore(cfg.Client.CartPath)
	notifier := storefront.NotifierFunc(func(message string) {
		fmt.Println(">> " + message)
	})

	app, err := storefront.NewApp(client, store, notifier, log)
	if err != nil {
		log.Fatal("Failed to load cart", zap.Error(err))
	}

	searcher := storefront.NewSearcher(app.Search, cfg.Client.SearchDebounce, func(res storefront.SearchResult) {
		if res.Err != nil {
			fmt.Printf("search %q failed: %v\n", res.Query, res.Err)
			return
		}
		fmt.Printf("search %q: %d result(s)\n", res.Query, len(res.Products))
		printProducts(res.Products)
	})
	defer searcher.Stop()

	ctx := context.Background()

	fmt.Printf("Connected to %s — type \"help\" for commands\n", cfg.Client.BaseURL)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "help":
			printHelp()

		case "list":
			products, err := app.Refresh(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			printProducts(products)

		case "search":
			// Results print asynchronously once the debounce window
			// passes; typing another search first supersedes this one
			searcher.Query(ctx, rest)

		case "add":
			id, err := strconv.ParseInt(rest, 10, 64)
			if err != nil {
				fmt.Println("usage: add <product-id>")
				continue
			}
			if err := app.AddToCart(ctx, id); err != nil {
				fmt.Println("error:", err)
			}

		case "remove":
			index, err := strconv.Atoi(rest)
			if err != nil {
				fmt.Println("usage: remove <line-index>")
				continue
			}
			if err := app.RemoveFromCart(index); err != nil {
				fmt.Println("error:", err)
			}

		case "cart":
			printCart(app)

		case "checkout":
			name := rest
			if name == "" {
				name = "Guest User"
			}
			if _, err := app.Checkout(ctx, name); err != nil {
				fmt.Println("error:", err)
			}

		case "contact":
			fields := strings.SplitN(rest, " ", 3)
			if len(fields) < 3 {
				fmt.Println("usage: contact <name> <email> <message>")
				continue
			}
			if err := app.SendMessage(ctx, fields[0], fields[1], fields[2]); err != nil {
				fmt.Println("error:", err)
			}

		case "subscribe":
			if rest == "" {
				fmt.Println("usage: subscribe <email>")
				continue
			}
			if err := app.Subscribe(ctx, rest); err != nil {
				fmt.Println("error:", err)
			}

		case "quit", "exit":
			return

		default:
			fmt.Printf("unknown command %q — type \"help\"\n", cmd)
		}
	}
}

func printHelp() {
	fmt.Print(`commands:
  list                              show the catalog
  search <text>                     search the catalog (debounced)
  add <product-id>                  add a product to the cart
  remove <line-index>               remove a cart line (0-based)
  cart                              show the cart and total
  checkout [name]                   place the order
  contact <name> <email> <message>  send a contact message
  subscribe <email>                 join the newsletter
  quit                              exit
`)
}

func printProducts(products []storefront.Product) {
	for _, p := range products {
		tag := ""
		if p.Tag != "" {
			tag = " [" + p.Tag + "]"
		}
		fmt.Printf("  %d. %s%s — $%s (%.1f★)\n      %s\n", p.ID, p.Name, tag, p.Price.StringFixed(2), p.Rating, p.Description)
	}
}

func printCart(app *storefront.App) {
	cart := app.Cart()
	if cart.Len() == 0 {
		fmt.Println("  (empty)")
		return
	}
	for i, line := range cart.Lines {
		fmt.Printf("  %d: %s — $%s\n", i, line.Name, line.Price.StringFixed(2))
	}
	fmt.Printf("  total: $%s\n", app.Total().StringFixed(2))
}
