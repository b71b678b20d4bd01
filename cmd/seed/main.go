// Command seed fills the configured database with demo salons: an owner
// account per salon (password "$Password1234"), the default week, a service
// menu and a small team.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"salonbook/config"
	"salonbook/database"
	catalogRepo "salonbook/database/repository/catalog"
	hoursRepo "salonbook/database/repository/hours"
	ownerRepo "salonbook/database/repository/owner"
	salonRepo "salonbook/database/repository/salon"
	staffRepo "salonbook/database/repository/staff"
	"salonbook/models"
	"salonbook/services/owner"
	"salonbook/services/salon"
	"salonbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const demoPassword = "$Password1234"

var cities = []string{"Pune", "Mumbai", "Bengaluru"}

var menu = []models.ServiceInput{
	{Name: "Haircut", Price: 50000, Duration: 30},
	{Name: "Beard Trim", Price: 20000, Duration: 15},
	{Name: "Hair Colour", Price: 250000, Duration: 90},
	{Name: "Facial", Price: 150000, Duration: 60},
	{Name: "Manicure", Price: 80000, Duration: 45},
}

var roles = []string{"Stylist", "Senior Stylist", "Colourist", "Beautician"}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if err := database.InitDB(logger); err != nil {
		logger.Fatal("seed: failed to connect to MongoDB", zap.Error(err))
	}
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Clear existing demo data.
	for _, name := range []string{
		utils.OwnersCollection,
		utils.SalonsCollection,
		utils.WorkingHoursCollection,
		utils.ServicesCollection,
		utils.StaffCollection,
		utils.AppointmentsCollection,
		utils.AppointmentGuardsCollection,
	} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			logger.Fatal("seed: failed to clear collection", zap.String("collection", name), zap.Error(err))
		}
	}

	owners := &owner.DefaultOwnerService{Repo: ownerRepo.NewMongoOwnerRepo(db), Logger: logger}
	salons := &salon.DefaultSalonService{
		Salons:  salonRepo.NewMongoSalonRepo(db),
		Hours:   hoursRepo.NewMongoHoursRepo(db),
		Catalog: catalogRepo.NewMongoCatalogRepo(db),
		Staff:   staffRepo.NewMongoStaffRepo(db),
		Logger:  logger,
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	salonsPerCity := 3
	counter := 1

	for _, city := range cities {
		for i := 0; i < salonsPerCity; i++ {
			o, err := owners.Register(ctx, models.RegisterOwnerRequest{
				Name:     fmt.Sprintf("Owner %d", counter),
				Email:    fmt.Sprintf("owner_%d@example.com", counter),
				Phone:    fmt.Sprintf("900000%04d", counter),
				Password: demoPassword,
			})
			if err != nil {
				logger.Fatal("seed: failed to register owner", zap.Error(err))
			}

			s, err := salons.CreateSalon(ctx, o.ID, models.SalonInput{
				Name:        fmt.Sprintf("%s Salon %d", city, counter),
				Address:     fmt.Sprintf("%d Sample Street", 100+counter),
				City:        city,
				Description: "Demo salon",
			})
			if err != nil {
				logger.Fatal("seed: failed to create salon", zap.Error(err))
			}

			// Sundays off for every other salon.
			if counter%2 == 0 {
				week := salon.DefaultWeek()
				week[6].IsClosed = true
				if _, err := salons.SetHours(ctx, s.ID, week); err != nil {
					logger.Fatal("seed: failed to set hours", zap.Error(err))
				}
			}

			for _, svc := range menu {
				if _, err := salons.AddService(ctx, s.ID, svc); err != nil {
					logger.Fatal("seed: failed to add service", zap.Error(err))
				}
			}

			team := 1 + rng.Intn(3)
			for j := 1; j <= team; j++ {
				if _, err := salons.AddStaff(ctx, s.ID, models.StaffInput{
					Name: fmt.Sprintf("Staff %d-%d", counter, j),
					Role: roles[rng.Intn(len(roles))],
				}); err != nil {
					logger.Fatal("seed: failed to add staff", zap.Error(err))
				}
			}

			logger.Info("seeded salon",
				zap.String("salonID", s.ID),
				zap.String("owner", o.Email),
				zap.Int("staff", team),
			)
			counter++
		}
	}

	if err := database.Close(context.Background()); err != nil {
		logger.Warn("seed: disconnect failed", zap.Error(err))
	}
}
