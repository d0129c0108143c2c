// Command seed loads a small sample catalog into the table for local
// development. Items are written through the storage client's batch API, so
// it also serves as a smoke test for table connectivity.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"catalog-api/application/ports"
	"catalog-api/infrastructure/config"
	"catalog-api/infrastructure/di"
	dynamostore "catalog-api/infrastructure/persistence/dynamodb"
	"catalog-api/infrastructure/persistence/schema"
	"catalog-api/pkg/utils"
)

type sampleProduct struct {
	name        string
	brand       string
	category    string
	price       float64
	stock       int
	description string
}

var sampleBrands = map[string]string{
	"Acme Tools":    "Hand tools and workshop supplies for professionals",
	"Volt Electric": "Cordless power tools and batteries",
	"Northwood":     "Workbenches, storage and shop furniture",
}

var sampleCategories = map[string]string{
	"Power Tools": "Drills, saws and other powered equipment",
	"Hand Tools":  "Unpowered tools for manual work",
	"Storage":     "Boxes, cabinets and organizers",
}

var sampleProducts = []sampleProduct{
	{"Cordless Drill 18V", "Volt Electric", "Power Tools", 149.99, 40, "18V cordless drill with two batteries"},
	{"Circular Saw", "Volt Electric", "Power Tools", 189.0, 15, "Compact circular saw with laser guide"},
	{"Claw Hammer", "Acme Tools", "Hand Tools", 24.5, 120, "16oz claw hammer with fiberglass handle"},
	{"Socket Set 40pc", "Acme Tools", "Hand Tools", 59.99, 35, "40-piece metric socket set in a blow-molded case"},
	{"Rolling Tool Cabinet", "Northwood", "Storage", 449.99, 5, "Five-drawer rolling cabinet with ball-bearing slides"},
}

func main() {
	dryRun := flag.Bool("dry-run", false, "print the items without writing them")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	awsCfg, err := di.ProvideAWSConfig(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to load AWS configuration", zap.Error(err))
	}
	store := dynamostore.NewStore(di.ProvideDynamoDBClient(awsCfg, cfg), cfg.DynamoDBTable, logger)

	now := utils.NowUTC()
	items := make([]ports.Item, 0, len(sampleBrands)+len(sampleCategories)+2*len(sampleProducts))

	brandIDs := make(map[string]string, len(sampleBrands))
	for name, description := range sampleBrands {
		id := uuid.NewString()
		brandIDs[name] = id
		items = append(items, schema.NewBrandItem(id, name, description, "", now))
	}

	categoryIDs := make(map[string]string, len(sampleCategories))
	for name, description := range sampleCategories {
		id := uuid.NewString()
		categoryIDs[name] = id
		items = append(items, schema.NewCategoryItem(id, name, description, now))
	}

	for _, p := range sampleProducts {
		id := uuid.NewString()
		input := ports.NewProductInput{
			Name:          p.name,
			BrandID:       brandIDs[p.brand],
			CategoryID:    categoryIDs[p.category],
			Price:         p.price,
			Description:   p.description,
			StockQuantity: p.stock,
		}
		items = append(items, schema.NewProductItem(id, input, now))
		items = append(items, schema.NewProductListItem(id, input, now))
	}

	if *dryRun {
		for _, item := range items {
			logger.Info("would write item",
				zap.Any("PK", item[schema.PKField]),
				zap.Any("entity_type", item["entity_type"]))
		}
		return
	}

	if err := store.BatchWrite(ctx, items, nil); err != nil {
		logger.Fatal("Seed failed", zap.Error(err))
	}

	logger.Info("Seed complete",
		zap.String("table", cfg.DynamoDBTable),
		zap.Int("items", len(items)))
}
