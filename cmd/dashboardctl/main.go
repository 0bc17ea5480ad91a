package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"inventory-dashboard-connector/internal/config"
	"inventory-dashboard-connector/internal/connector"
	"inventory-dashboard-connector/internal/models"
	"inventory-dashboard-connector/internal/telemetry"
)

const usage = `Usage: dashboardctl <command> [flags]

Commands:
  probe                          check server and database connectivity
  products                       list all products
  products -query <q>            search products by name
  products -categories <a,b>     filter products by categories
  products -min <n> -max <n>     filter products by price range
  products -sort <asc|desc>      list products sorted by price
  products -ids <1,2>            fetch products by id
  customers                      list all customers
  customers -query <q>           search customers by name
  customers -status <s>          filter customers by membership status
  customers -email <e>           find customers by email
  customers -id <n>              fetch one customer by id
  customers -orders <1,2>        find customers by previous order ids
  orders                         list all orders
  orders -query <q>              search orders by customer name
  orders -ids <1,2>              fetch orders by id
  order-details                  joined order summaries
  order-details -products <n>    summaries of orders with n product lines
  sales                          total sales per customer
  order-counts                   total orders per customer
  total-price -ids <1,2>         summed price of the given orders
  update-status -id <n> -status <s>  set an order's status
  signup -fullname <n> -username <u> -password <p> -email <e>
  login -username <u> -password <p>
  logout
  whoami                         show the logged-in admin
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.LoadConfig()
	ctx := context.Background()

	tel := telemetry.Setup(ctx, cfg.MetricsExporter, cfg.MetricsAddr)
	defer tel.Close(ctx)

	metrics := telemetry.NewConnectorTelemetry()
	if err := metrics.Initialize(ctx); err != nil {
		slog.Warn("Telemetry initialization failed, continuing without metrics", "error", err)
		metrics = nil
	}

	conn := connector.New(cfg.BaseURL,
		connector.NewFileTokenStore(cfg.TokenPath),
		connector.WithTimeout(cfg.RequestTimeout),
		connector.WithTelemetry(metrics),
	)

	if err := run(ctx, conn, os.Args[1], os.Args[2:]); err != nil {
		slog.Error("Command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, conn *connector.Connector, command string, args []string) error {
	switch command {
	case "probe":
		if err := conn.ProbeServer(ctx); err != nil {
			return fmt.Errorf("server unreachable: %w", err)
		}
		if err := conn.ProbeDatabase(ctx); err != nil {
			return fmt.Errorf("database unreachable: %w", err)
		}
		fmt.Println("server and database are up")
		return nil

	case "products":
		return runProducts(ctx, conn, args)

	case "customers":
		return runCustomers(ctx, conn, args)

	case "orders":
		return runOrders(ctx, conn, args)

	case "order-details":
		fs := flag.NewFlagSet("order-details", flag.ExitOnError)
		numProducts := fs.Int("products", 0, "filter to orders with exactly this many product lines")
		fs.Parse(args)
		if *numProducts > 0 {
			details, err := conn.OrdersWithProductCount(ctx, *numProducts)
			if err != nil {
				return err
			}
			return printJSON(details)
		}
		details, err := conn.OrdersWithDetails(ctx)
		if err != nil {
			return err
		}
		return printJSON(details)

	case "sales":
		sales, err := conn.TotalSalesPerCustomer(ctx)
		if err != nil {
			return err
		}
		return printJSON(sales)

	case "order-counts":
		counts, err := conn.TotalOrdersPerCustomer(ctx)
		if err != nil {
			return err
		}
		return printJSON(counts)

	case "total-price":
		fs := flag.NewFlagSet("total-price", flag.ExitOnError)
		ids := fs.String("ids", "", "comma-separated order ids")
		fs.Parse(args)
		orderIDs, err := parseIDs(*ids)
		if err != nil {
			return err
		}
		total, err := conn.TotalPriceOfOrders(ctx, orderIDs)
		if err != nil {
			return err
		}
		fmt.Printf("%.2f\n", total)
		return nil

	case "update-status":
		fs := flag.NewFlagSet("update-status", flag.ExitOnError)
		id := fs.Int("id", 0, "order id")
		status := fs.String("status", "", "new order status")
		fs.Parse(args)
		msg, err := conn.UpdateOrderStatus(ctx, *id, *status)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil

	case "signup":
		fs := flag.NewFlagSet("signup", flag.ExitOnError)
		fullName := fs.String("fullname", "", "full name")
		username := fs.String("username", "", "username")
		password := fs.String("password", "", "password")
		email := fs.String("email", "", "email address")
		photo := fs.String("photo", models.ProfilePhotoDefault, "profile photo filename")
		fs.Parse(args)
		msg, err := conn.Signup(ctx, models.Admin{
			FullName:     *fullName,
			Username:     *username,
			Password:     *password,
			Email:        *email,
			ProfilePhoto: *photo,
		})
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		username := fs.String("username", "", "username or email")
		password := fs.String("password", "", "password")
		fs.Parse(args)
		admin, err := conn.Login(ctx, *username, *password)
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (%s)\n", admin.Username, admin.FullName)
		return nil

	case "logout":
		if err := conn.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	case "whoami":
		admin, err := conn.LoggedInAdmin(ctx)
		if err != nil {
			return err
		}
		return printJSON(admin)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runProducts(ctx context.Context, conn *connector.Connector, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	query := fs.String("query", "", "name search")
	categories := fs.String("categories", "", "comma-separated categories")
	min := fs.Float64("min", -1, "minimum price")
	max := fs.Float64("max", -1, "maximum price")
	sortOrder := fs.String("sort", "", "asc or desc")
	ids := fs.String("ids", "", "comma-separated product ids")
	fs.Parse(args)

	var (
		products []models.Product
		err      error
	)
	switch {
	case *query != "":
		products, err = conn.SearchProductsByName(ctx, *query)
	case *categories != "":
		products, err = conn.ProductsByCategories(ctx, strings.Split(*categories, ","))
	case *min >= 0 && *max >= 0:
		products, err = conn.ProductsWithinPriceRange(ctx, *min, *max)
	case *sortOrder != "":
		order := models.SortAscending
		if *sortOrder == "desc" {
			order = models.SortDescending
		}
		products, err = conn.ProductsSortedByPrice(ctx, order)
	case *ids != "":
		var productIDs []int
		productIDs, err = parseIDs(*ids)
		if err != nil {
			return err
		}
		products, err = conn.ProductsByIDs(ctx, productIDs)
	default:
		products, err = conn.AllProducts(ctx)
	}
	if err != nil {
		return err
	}
	return printJSON(products)
}

func runCustomers(ctx context.Context, conn *connector.Connector, args []string) error {
	fs := flag.NewFlagSet("customers", flag.ExitOnError)
	query := fs.String("query", "", "name search")
	status := fs.String("status", "", "membership status")
	email := fs.String("email", "", "email address")
	id := fs.Int("id", 0, "customer id")
	orders := fs.String("orders", "", "comma-separated previous order ids")
	fs.Parse(args)

	switch {
	case *id > 0:
		customer, err := conn.CustomerByID(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(customer)
	case *query != "":
		customers, err := conn.SearchCustomersByName(ctx, *query)
		if err != nil {
			return err
		}
		return printJSON(customers)
	case *status != "":
		customers, err := conn.CustomersByMembershipStatus(ctx, models.MembershipStatus(*status))
		if err != nil {
			return err
		}
		return printJSON(customers)
	case *email != "":
		customers, err := conn.CustomerByEmail(ctx, *email)
		if err != nil {
			return err
		}
		return printJSON(customers)
	case *orders != "":
		orderIDs, err := parseIDs(*orders)
		if err != nil {
			return err
		}
		customers, err := conn.CustomersByPreviousOrders(ctx, orderIDs)
		if err != nil {
			return err
		}
		return printJSON(customers)
	default:
		customers, err := conn.AllCustomers(ctx)
		if err != nil {
			return err
		}
		return printJSON(customers)
	}
}

func runOrders(ctx context.Context, conn *connector.Connector, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ExitOnError)
	query := fs.String("query", "", "customer name search")
	ids := fs.String("ids", "", "comma-separated order ids")
	fs.Parse(args)

	var (
		orders []models.Order
		err    error
	)
	switch {
	case *query != "":
		orders, err = conn.SearchOrdersByCustomerName(ctx, *query)
	case *ids != "":
		var orderIDs []int
		orderIDs, err = parseIDs(*ids)
		if err != nil {
			return err
		}
		orders, err = conn.OrdersByIDs(ctx, orderIDs)
	default:
		orders, err = conn.AllOrders(ctx)
	}
	if err != nil {
		return err
	}
	return printJSON(orders)
}

func parseIDs(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("no ids given")
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
