// Package csvstore reads and writes the delimited data files the workflow
// interoperates with: catalog and customer files loaded at startup, queue
// and refund-stack snapshots written at shutdown. Malformed records are
// skipped individually so one bad row never aborts a load.
package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gruberoo/internal/core/domain/model/customer"
	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/core/domain/model/order"
	"gruberoo/internal/core/domain/model/restaurant"
	"gruberoo/internal/core/ports"
)

// Data file names, fixed by the interchange format.
const (
	restaurantsFile = "restaurants.csv"
	foodItemsFile   = "fooditems.csv"
	customersFile   = "customers.csv"
	ordersFile      = "orders.csv"
	queueFile       = "queue.csv"
	stackFile       = "stack.csv"
)

var ErrUnitOfWorkFactoryIsRequired = errors.New("unit of work factory must not be nil")

// FileResult reports how one file's rows fared during a load.
type FileResult struct {
	Loaded  int
	Skipped int
}

// LoadSummary aggregates the per-file results of a full startup load.
type LoadSummary struct {
	Restaurants FileResult
	FoodItems   FileResult
	Customers   FileResult
	Orders      FileResult
}

// Loader populates the repositories from the data files in one directory.
type Loader struct {
	uowFactory ports.UnitOfWorkFactory
	dir        string
	log        *slog.Logger
}

// NewLoader creates a loader reading from dir.
func NewLoader(uowFactory ports.UnitOfWorkFactory, dir string, log *slog.Logger) (*Loader, error) {
	if uowFactory == nil {
		return nil, ErrUnitOfWorkFactoryIsRequired
	}
	if log == nil {
		log = slog.Default()
	}
	return &Loader{uowFactory: uowFactory, dir: dir, log: log}, nil
}

// LoadAll loads restaurants, food items, customers and orders in that
// order, inside one unit of work. A missing file is not an error: the
// corresponding result stays zero and loading continues. A read failure
// aborts the whole load and leaves the stores untouched.
func (l *Loader) LoadAll(ctx context.Context) (LoadSummary, error) {
	uow := l.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoadSummary{}, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	var summary LoadSummary

	restaurants, result, err := l.loadRestaurants()
	if err != nil {
		return LoadSummary{}, err
	}
	summary.Restaurants = result

	summary.FoodItems, err = l.loadFoodItems(restaurants)
	if err != nil {
		return LoadSummary{}, err
	}

	customers, result, err := l.loadCustomers()
	if err != nil {
		return LoadSummary{}, err
	}
	summary.Customers = result

	summary.Orders, err = l.loadOrders(ctx, uow, restaurants, customers)
	if err != nil {
		return LoadSummary{}, err
	}

	for _, rest := range restaurants {
		if err = uow.RestaurantRepository().Add(ctx, rest.aggregate); err != nil {
			return LoadSummary{}, err
		}
	}
	for _, cust := range customers {
		if err = uow.CustomerRepository().Add(ctx, cust); err != nil {
			return LoadSummary{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return LoadSummary{}, err
	}

	l.log.Info("data files loaded",
		"restaurants", summary.Restaurants.Loaded,
		"food_items", summary.FoodItems.Loaded,
		"customers", summary.Customers.Loaded,
		"orders", summary.Orders.Loaded)

	return summary, nil
}

// loadedRestaurant keeps catalog insertion order alongside the aggregate.
type loadedRestaurant struct {
	aggregate *restaurant.Restaurant
}

// loadRestaurants reads restaurants.csv: restaurantId, name, email.
func (l *Loader) loadRestaurants() (map[string]*loadedRestaurant, FileResult, error) {
	restaurants := make(map[string]*loadedRestaurant)
	var result FileResult

	err := l.readFile(restaurantsFile, func(fields []string) {
		if len(fields) < 3 {
			result.Skipped++
			return
		}

		rest, err := restaurant.NewRestaurant(
			strings.TrimSpace(fields[0]),
			strings.TrimSpace(fields[1]),
			strings.TrimSpace(fields[2]),
		)
		if err != nil {
			result.Skipped++
			return
		}
		if _, exists := restaurants[rest.ID()]; exists {
			result.Skipped++
			return
		}

		restaurants[rest.ID()] = &loadedRestaurant{aggregate: rest}
		result.Loaded++
	})
	if err != nil {
		return nil, FileResult{}, err
	}

	return restaurants, result, nil
}

// loadFoodItems reads fooditems.csv: restaurantId, itemName, description,
// price. Items attach to the restaurant's first menu, created on demand.
func (l *Loader) loadFoodItems(restaurants map[string]*loadedRestaurant) (FileResult, error) {
	var result FileResult

	err := l.readFile(foodItemsFile, func(fields []string) {
		if len(fields) < 4 {
			result.Skipped++
			return
		}

		rest, ok := restaurants[strings.TrimSpace(fields[0])]
		if !ok {
			result.Skipped++
			return
		}

		price, err := kernel.ParseMoney(strings.TrimSpace(fields[3]))
		if err != nil {
			result.Skipped++
			return
		}

		item, err := restaurant.NewFoodItem(
			strings.TrimSpace(fields[1]),
			strings.TrimSpace(fields[2]),
			price,
		)
		if err != nil {
			result.Skipped++
			return
		}

		menu, err := l.defaultMenu(rest.aggregate)
		if err != nil || menu.AddFoodItem(item) != nil {
			result.Skipped++
			return
		}
		result.Loaded++
	})
	if err != nil {
		return FileResult{}, err
	}

	return result, nil
}

// defaultMenu returns the restaurant's first menu, creating one when the
// catalog file carries items for a restaurant that has none yet.
func (l *Loader) defaultMenu(rest *restaurant.Restaurant) (*restaurant.Menu, error) {
	if menus := rest.Menus(); len(menus) > 0 {
		return menus[0], nil
	}

	menu, err := restaurant.NewMenu(rest.ID()+"-menu", rest.Name()+" Menu")
	if err != nil {
		return nil, err
	}
	if err = rest.AddMenu(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// loadCustomers reads customers.csv: name, email.
func (l *Loader) loadCustomers() (map[string]*customer.Customer, FileResult, error) {
	customers := make(map[string]*customer.Customer)
	var result FileResult

	err := l.readFile(customersFile, func(fields []string) {
		if len(fields) < 2 {
			result.Skipped++
			return
		}

		cust, err := customer.NewCustomer(strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]))
		if err != nil {
			result.Skipped++
			return
		}
		if _, exists := customers[cust.Email()]; exists {
			result.Skipped++
			return
		}

		customers[cust.Email()] = cust
		result.Loaded++
	})
	if err != nil {
		return nil, FileResult{}, err
	}

	return customers, result, nil
}

// loadOrders reads orders.csv in the persisted record format. An order
// whose customer or restaurant is unknown is skipped; unresolvable items
// within a record are dropped by the codec. Non-terminal orders are put
// back on their restaurant's queue.
func (l *Loader) loadOrders(
	ctx context.Context,
	uow ports.UnitOfWork,
	restaurants map[string]*loadedRestaurant,
	customers map[string]*customer.Customer,
) (FileResult, error) {
	var result FileResult
	var addErr error

	err := l.readFile(ordersFile, func(fields []string) {
		if addErr != nil {
			return
		}

		if len(fields) < order.RecordFieldCount {
			result.Skipped++
			return
		}

		rest, restOK := restaurants[strings.TrimSpace(fields[2])]
		cust, custOK := customers[strings.TrimSpace(fields[1])]
		if !restOK || !custOK {
			result.Skipped++
			return
		}

		o, err := order.RestoreFromRecord(fields, func(name string) (string, kernel.Money, bool) {
			item, ok := rest.aggregate.FindFoodItem(name)
			if !ok {
				return "", kernel.Money{}, false
			}
			return item.Description(), item.Price(), true
		})
		if err != nil {
			result.Skipped++
			return
		}

		if err = uow.OrderRepository().Add(ctx, o); err != nil {
			if errors.Is(err, context.Canceled) {
				addErr = err
				return
			}
			result.Skipped++
			return
		}

		if err = cust.AddOrder(o.ID()); err != nil {
			result.Skipped++
			return
		}
		if !o.Status().IsTerminal() {
			if err = rest.aggregate.Enqueue(o.ID()); err != nil {
				result.Skipped++
				return
			}
		}
		result.Loaded++
	})
	if err != nil {
		return FileResult{}, err
	}
	if addErr != nil {
		return FileResult{}, addErr
	}

	return result, nil
}

// readFile streams one CSV file, skipping the header row and blank lines.
// A missing file is silently treated as empty.
func (l *Loader) readFile(name string, handle func(fields []string)) error {
	path := filepath.Join(l.dir, name)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.log.Warn("data file not found, skipping", "file", name)
			return nil
		}
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header := true
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			// A malformed row is a skip, not an abort.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				handle(nil)
				continue
			}
			return fmt.Errorf("read %s: %w", name, err)
		}

		if header {
			header = false
			continue
		}
		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			continue
		}

		handle(fields)
	}
}
