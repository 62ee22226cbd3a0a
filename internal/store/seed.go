package store

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/fleetdesk/fleetdesk/internal/models"
)

// Fixture generators. Ids are assigned per collection starting at 1; the
// allocator floor is raised above the highest of them after seeding.

func seedVehicles(rng *rand.Rand) []models.Vehicle {
	now := time.Now()
	specs := []struct {
		plate  string
		brand  string
		year   int
		vtype  models.VehicleType
		cap    float64
		status models.VehicleStatus
	}{
		{"34 TIR 101", "Mercedes-Benz Actros", 2021, models.VehicleTypeTruck, 24000, models.VehicleStatusTransit},
		{"06 KMY 482", "Volvo FH16", 2019, models.VehicleTypeTruck, 26000, models.VehicleStatusTransit},
		{"35 LRY 277", "Scania R450", 2022, models.VehicleTypeLorry, 18000, models.VehicleStatusTransit},
		{"16 VAN 315", "Ford Transit", 2020, models.VehicleTypeVan, 1800, models.VehicleStatusIdle},
		{"01 PKP 664", "Toyota Hilux", 2023, models.VehicleTypePickup, 1000, models.VehicleStatusIdle},
		{"42 TIR 908", "MAN TGX", 2018, models.VehicleTypeTruck, 25000, models.VehicleStatusMaintenance},
		{"34 VAN 733", "Volkswagen Crafter", 2021, models.VehicleTypeVan, 1600, models.VehicleStatusIdle},
		{"07 LRY 550", "DAF XF", 2020, models.VehicleTypeLorry, 19000, models.VehicleStatusTransit},
	}
	vehicles := make([]models.Vehicle, 0, len(specs))
	for i, sp := range specs {
		vehicles = append(vehicles, models.Vehicle{
			ID:          i + 1,
			Plate:       sp.plate,
			Brand:       sp.brand,
			ModelYear:   sp.year,
			VehicleType: sp.vtype,
			CapacityKg:  sp.cap,
			Status:      sp.status,
			// Scatter around central Anatolia until the simulator takes over.
			Latitude:  round6(39.0 + rng.Float64()*2),
			Longitude: round6(32.0 + rng.Float64()*4),
			CreatedAt: now.AddDate(0, 0, -(len(specs) - i)),
		})
	}
	return vehicles
}

func seedDrivers() []models.Driver {
	now := time.Now()
	return []models.Driver{
		{ID: 1, Name: "Hasan Yıldız", Phone: "+90 532 111 2233", LicenseNumber: "E-482917", IsAvailable: false, VehiclePlate: "34 TIR 101", CreatedAt: now},
		{ID: 2, Name: "Murat Demir", Phone: "+90 533 444 5566", LicenseNumber: "E-551204", IsAvailable: false, VehiclePlate: "06 KMY 482", CreatedAt: now},
		{ID: 3, Name: "Ayşe Kaya", Phone: "+90 535 777 8899", LicenseNumber: "E-310876", IsAvailable: true, CreatedAt: now},
		{ID: 4, Name: "Emre Şahin", Phone: "+90 536 222 3344", LicenseNumber: "E-679432", IsAvailable: false, VehiclePlate: "35 LRY 277", CreatedAt: now},
		{ID: 5, Name: "Zeynep Arslan", Phone: "+90 537 555 6677", LicenseNumber: "E-128540", IsAvailable: true, CreatedAt: now},
		{ID: 6, Name: "Kemal Öztürk", Phone: "+90 538 888 9900", LicenseNumber: "E-905361", IsAvailable: true, VehiclePlate: "07 LRY 550", CreatedAt: now},
	}
}

func seedCustomers() []models.Customer {
	now := time.Now()
	return []models.Customer{
		{ID: 1, Name: "Anadolu Gıda A.Ş.", Email: "lojistik@anadolugida.example", Phone: "+90 212 444 0101", Address: "Topkapı, İstanbul", TotalShipments: 2, CreatedAt: now},
		{ID: 2, Name: "Ege Tekstil Ltd.", Email: "sevkiyat@egetekstil.example", Phone: "+90 232 444 0202", Address: "Bornova, İzmir", TotalShipments: 2, CreatedAt: now},
		{ID: 3, Name: "Karadeniz İnşaat", Email: "satinalma@kdzinsaat.example", Phone: "+90 462 444 0303", Address: "Ortahisar, Trabzon", TotalShipments: 1, CreatedAt: now},
		{ID: 4, Name: "Marmara Elektronik", Email: "depo@marmaraelk.example", Phone: "+90 224 444 0404", Address: "Nilüfer, Bursa", TotalShipments: 1, CreatedAt: now},
		{ID: 5, Name: "Akdeniz Tarım Koop.", Email: "ihracat@akdeniztarim.example", Phone: "+90 242 444 0505", Address: "Kepez, Antalya", TotalShipments: 0, CreatedAt: now},
	}
}

func seedShipments(rng *rand.Rand) []models.Shipment {
	now := time.Now()
	vid := func(id int) *int { return &id }
	specs := []struct {
		customerID   int
		customerName string
		vehicleID    *int
		vehiclePlate string
		origin, dest string
		weight       float64
		price        string
		status       models.ShipmentStatus
	}{
		{1, "Anadolu Gıda A.Ş.", vid(1), "34 TIR 101", "İstanbul", "Ankara", 12500, "18500.00", models.ShipmentStatusDispatched},
		{1, "Anadolu Gıda A.Ş.", nil, "", "İstanbul", "İzmir", 8200, "14750.00", models.ShipmentStatusPending},
		{2, "Ege Tekstil Ltd.", vid(2), "06 KMY 482", "İzmir", "Ankara", 6400, "11200.00", models.ShipmentStatusDispatched},
		{2, "Ege Tekstil Ltd.", nil, "", "İzmir", "Bursa", 3100, "7400.00", models.ShipmentStatusDelivered},
		{3, "Karadeniz İnşaat", vid(3), "35 LRY 277", "Trabzon", "Samsun", 15800, "22300.00", models.ShipmentStatusDispatched},
		{4, "Marmara Elektronik", vid(8), "07 LRY 550", "Bursa", "Antalya", 2700, "9600.00", models.ShipmentStatusDispatched},
	}
	shipments := make([]models.Shipment, 0, len(specs))
	for i, sp := range specs {
		shipments = append(shipments, models.Shipment{
			ID:            i + 1,
			CustomerID:    sp.customerID,
			CustomerName:  sp.customerName,
			VehicleID:     sp.vehicleID,
			VehiclePlate:  sp.vehiclePlate,
			Origin:        sp.origin,
			Destination:   sp.dest,
			WeightKg:      sp.weight,
			Price:         sp.price,
			Status:        sp.status,
			TrackingToken: uuid.NewString(),
			CreatedAt:     now.Add(-time.Duration(rng.Intn(72)) * time.Hour),
		})
	}
	return shipments
}

func seedInvoices(rng *rand.Rand) []models.Invoice {
	now := time.Now()
	specs := []struct {
		customerID   int
		customerName string
		shipmentID   int
		subtotal     string
		discount     string
		taxRate      float64
		status       models.InvoiceStatus
	}{
		{1, "Anadolu Gıda A.Ş.", 1, "18500.00", "500.00", 20, models.InvoiceStatusSent},
		{2, "Ege Tekstil Ltd.", 3, "11200.00", "0.00", 20, models.InvoiceStatusPaid},
		{2, "Ege Tekstil Ltd.", 4, "7400.00", "200.00", 20, models.InvoiceStatusOverdue},
		{3, "Karadeniz İnşaat", 5, "22300.00", "0.00", 20, models.InvoiceStatusDraft},
	}
	invoices := make([]models.Invoice, 0, len(specs))
	for i, sp := range specs {
		issued := now.AddDate(0, 0, -rng.Intn(30))
		inv := models.Invoice{
			ID:            i + 1,
			InvoiceNumber: models.InvoiceNumberFor(i+1, issued),
			CustomerID:    sp.customerID,
			CustomerName:  sp.customerName,
			ShipmentID:    sp.shipmentID,
			Subtotal:      sp.subtotal,
			Discount:      sp.discount,
			TaxRate:       sp.taxRate,
			Status:        sp.status,
			IssuedDate:    issued,
			DueDate:       issued.AddDate(0, 1, 0),
			CreatedAt:     issued,
		}
		inv.Recalculate()
		invoices = append(invoices, inv)
	}
	return invoices
}

func seedRoutes(rng *rand.Rand) []models.Route {
	now := time.Now()
	sid := func(id int) *int { return &id }
	iid := func(id int) *int { return &id }
	routes := []models.Route{
		{
			ID: 1, Name: "İstanbul - Ankara Ekspres",
			VehicleID: iid(1), VehiclePlate: "34 TIR 101",
			DriverID: iid(1), DriverName: "Hasan Yıldız",
			Stops: []models.RouteStop{
				{Sequence: 1, ShipmentID: sid(1), Origin: "İstanbul", Destination: "Ankara"},
			},
			Status: models.RouteStatusInProgress,
		},
		{
			ID: 2, Name: "Ege Dağıtım Hattı",
			VehicleID: iid(2), VehiclePlate: "06 KMY 482",
			DriverID: iid(2), DriverName: "Murat Demir",
			Stops: []models.RouteStop{
				{Sequence: 1, ShipmentID: sid(3), Origin: "İzmir", Destination: "Ankara"},
				{Sequence: 2, ShipmentID: sid(4), Origin: "İzmir", Destination: "Bursa"},
			},
			Status: models.RouteStatusPlanned,
		},
		{
			ID: 3, Name: "Karadeniz Sahil Rotası",
			VehicleID: iid(3), VehiclePlate: "35 LRY 277",
			DriverID: iid(4), DriverName: "Emre Şahin",
			Stops: []models.RouteStop{
				{Sequence: 1, ShipmentID: sid(5), Origin: "Trabzon", Destination: "Samsun"},
			},
			Status: models.RouteStatusPlanned,
		},
	}
	for i := range routes {
		routes[i].TotalDistanceKm = math.Round((150+rng.Float64()*800)*100) / 100
		routes[i].TotalDurationMin = math.Round((120+rng.Float64()*600)*100) / 100
		routes[i].CreatedAt = now
	}
	return routes
}

func seedMaintenance(rng *rand.Rand) []models.MaintenanceRecord {
	now := time.Now()
	done := now.AddDate(0, 0, -3)
	records := []models.MaintenanceRecord{
		{ID: 1, VehicleID: 6, VehiclePlate: "42 TIR 908", MaintenanceType: models.MaintenanceTypeRepair, Status: models.MaintenanceStatusInProgress, ScheduledDate: now.AddDate(0, 0, -1)},
		{ID: 2, VehicleID: 1, VehiclePlate: "34 TIR 101", MaintenanceType: models.MaintenanceTypeService, Status: models.MaintenanceStatusScheduled, ScheduledDate: now.AddDate(0, 0, 7)},
		{ID: 3, VehicleID: 4, VehiclePlate: "16 VAN 315", MaintenanceType: models.MaintenanceTypeInspection, Status: models.MaintenanceStatusCompleted, ScheduledDate: now.AddDate(0, 0, -4), CompletedDate: &done},
		{ID: 4, VehicleID: 2, VehiclePlate: "06 KMY 482", MaintenanceType: models.MaintenanceTypeTireChange, Status: models.MaintenanceStatusScheduled, ScheduledDate: now.AddDate(0, 0, 14)},
	}
	for i := range records {
		records[i].Cost = models.FormatAmount(500 + rng.Float64()*9500)
		records[i].OdometerKm = math.Round(rng.Float64()*400000*10) / 10
		records[i].CreatedAt = now
	}
	return records
}

func seedMaintenanceArchive(rng *rand.Rand) []models.ArchivedMaintenance {
	now := time.Now()
	providers := []string{"Mercan Oto Servis", "TIR-SAN Bakım", "Doğuş Ağır Vasıta"}
	archive := make([]models.ArchivedMaintenance, 0, 8)
	for i := 0; i < 8; i++ {
		completed := now.AddDate(-1, -rng.Intn(10), 0)
		rec := models.ArchivedMaintenance{
			MaintenanceRecord: models.MaintenanceRecord{
				ID:              i + 1,
				VehicleID:       1 + rng.Intn(4),
				MaintenanceType: models.MaintenanceTypeService,
				Status:          models.MaintenanceStatusCompleted,
				Cost:            models.FormatAmount(300 + rng.Float64()*5000),
				ScheduledDate:   completed.AddDate(0, 0, -2),
				CompletedDate:   &completed,
				OdometerKm:      math.Round(rng.Float64()*350000*10) / 10,
				CreatedAt:       completed,
			},
			ServiceProvider: providers[rng.Intn(len(providers))],
			InvoiceRef:      models.InvoiceNumberFor(9000+i, completed),
			DowntimeDays:    1 + rng.Intn(5),
		}
		archive = append(archive, rec)
	}
	return archive
}

func seedFuelRecords(rng *rand.Rand) []models.FuelRecord {
	now := time.Now()
	did := func(id int) *int { return &id }
	stations := []string{"OPET Gebze", "Shell Bolu Dağı", "Petrol Ofisi Afyon", "BP Torbalı"}
	records := make([]models.FuelRecord, 0, 6)
	for i := 0; i < 6; i++ {
		liters := math.Round((150+rng.Float64()*400)*100) / 100
		ppl := math.Round((40+rng.Float64()*8)*100) / 100
		records = append(records, models.FuelRecord{
			ID:            i + 1,
			VehicleID:     1 + i%4,
			DriverID:      did(1 + i%3),
			Liters:        liters,
			PricePerLiter: ppl,
			TotalCost:     math.Round(liters*ppl*100) / 100,
			OdometerKm:    math.Round(rng.Float64()*400000*10) / 10,
			Station:       stations[i%len(stations)],
			Date:          now.AddDate(0, 0, -i*2),
			CreatedAt:     now,
		})
	}
	return records
}

func seedNotifications() []models.Notification {
	now := time.Now()
	return []models.Notification{
		{ID: 1, Type: models.NotificationWarning, Title: "Bakım zamanı yaklaşıyor", Message: "34 TIR 101 için periyodik bakım 7 gün içinde.", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 2, Type: models.NotificationSuccess, Title: "Teslimat tamamlandı", Message: "İzmir - Bursa sevkiyatı teslim edildi.", IsRead: true, CreatedAt: now.Add(-26 * time.Hour)},
		{ID: 3, Type: models.NotificationError, Title: "Araç arızası", Message: "42 TIR 908 servise alındı.", CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 4, Type: models.NotificationInfo, Title: "Yeni sevkiyat", Message: "Anadolu Gıda yeni sevkiyat oluşturdu.", CreatedAt: now.Add(-30 * time.Minute)},
	}
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
