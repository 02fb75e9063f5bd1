// Command seed populates the data directory with realistic demo
// records so the dashboards have something to show on a fresh install.
package main

import (
	"flag"
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/garageflow/garageflow/internal/config"
	"github.com/garageflow/garageflow/internal/models"
	"github.com/garageflow/garageflow/internal/store"
)

var customerNames = []string{
	"Ali Hosseini", "Maryam Ebrahimi", "Hossein Jafari", "Niloufar Sadeghi",
	"Amir Bagheri", "Fatemeh Kazemi", "Saeed Ghasemi", "Leila Rahimi",
}

var carModels = []string{
	"Peugeot 206", "Pride 131", "Samand LX", "Tiba 2", "Dena Plus",
	"Peugeot Pars", "Quick R", "Shahin G",
}

var colors = []string{"white", "black", "silver", "gray", "blue", "red"}

var partCatalog = []struct {
	name  string
	code  string
	price float64
}{
	{"Oil filter", "OF-100", 45},
	{"Air filter", "AF-210", 38},
	{"Brake pad set", "BP-330", 120},
	{"Spark plug", "SP-410", 25},
	{"Timing belt", "TB-520", 210},
	{"Front shock absorber", "SA-615", 340},
}

func main() {
	customers := flag.Int("customers", 8, "number of demo customers")
	flag.Parse()

	cfg := config.Load()
	s, err := store.Open(cfg.DataDir)
	if err != nil {
		log.WithError(err).Fatal("failed to open store")
	}

	supplierID := s.AddSupplier(models.Supplier{
		Name:     "Tehran Yadak Co.",
		Phone:    "02144332211",
		Address:  "Azadi St, Tehran",
		IsActive: true,
	})
	for _, part := range partCatalog {
		qty := rand.Intn(40)
		s.AddInventoryItem(models.InventoryItem{
			Name:        part.name,
			Code:        part.code,
			Quantity:    qty,
			MinQuantity: 5,
			Price:       part.price,
			SupplierID:  supplierID,
		})
	}

	for i := 0; i < *customers; i++ {
		name := customerNames[i%len(customerNames)]
		customerID := s.AddCustomer(models.Customer{
			Name:     name,
			Phone:    fmt.Sprintf("0912%07d", rand.Intn(10000000)),
			Address:  "Tehran",
			IsActive: true,
		})
		vehicleID := s.AddVehicle(models.Vehicle{
			PlateNumber: fmt.Sprintf("%02d-%c-%03d", rand.Intn(99), 'A'+rune(rand.Intn(26)), rand.Intn(999)),
			Model:       carModels[rand.Intn(len(carModels))],
			Year:        2015 + rand.Intn(10),
			Color:       colors[rand.Intn(len(colors))],
			Status:      models.VehicleInRepair,
			CustomerID:  customerID,
		})
		jobCardID := s.AddJobCard(models.JobCard{
			VehicleID:  vehicleID,
			CustomerID: customerID,
			MechanicID: "2",
			Issues:     []string{"engine noise", "oil change due"},
			PartsUsed: []models.PartUsed{
				{Name: "Oil filter", Quantity: 1, Price: 45},
			},
			LaborCosts: []models.LaborCost{
				{Description: "diagnosis", Hours: 1, HourlyRate: 80, TotalCost: 80},
			},
		})
		s.AddPartRequest(models.PartRequest{
			MechanicID: "2",
			VehicleID:  vehicleID,
			Parts: []models.RequestedPart{
				{Name: "Brake pad set", Quantity: 1, Urgency: models.UrgencyMedium},
			},
		})
		log.WithFields(log.Fields{
			"customer": customerID,
			"vehicle":  vehicleID,
			"jobCard":  jobCardID,
		}).Info("seeded demo records")
	}

	if err := s.Close(); err != nil {
		log.WithError(err).Fatal("failed to flush demo data")
	}
	log.Info("demo data written")
}
