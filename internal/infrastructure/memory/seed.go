package memory

import (
	"context"
	"log/slog"
	"time"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/pkg/id"
)

// Seed loads the sample civic data the portal ships with: selectable
// locations, representatives, budget allocations and parliamentary speeches.
// Only the memory backend is seeded; a durable backend keeps its own data.
func Seed(ctx context.Context, locations *LocationRepo, reps *RepresentativeRepo, budgets *BudgetRepo, speeches *SpeechRepo) {
	locSeed := []domain.Location{
		{Name: "Delhi - New Delhi", State: "Delhi", Type: "city", Coordinates: &domain.GeoPoint{Lat: 28.6139, Lng: 77.2090}},
		{Name: "Mumbai - Andheri West", State: "Maharashtra", Type: "city", Coordinates: &domain.GeoPoint{Lat: 19.1364, Lng: 72.8296}},
		{Name: "Bangalore - Koramangala", State: "Karnataka", Type: "city", Coordinates: &domain.GeoPoint{Lat: 12.9352, Lng: 77.6245}},
		{Name: "Chennai - T. Nagar", State: "Tamil Nadu", Type: "city", Coordinates: &domain.GeoPoint{Lat: 13.0418, Lng: 80.2341}},
		{Name: "Kolkata - Salt Lake", State: "West Bengal", Type: "city", Coordinates: &domain.GeoPoint{Lat: 22.5726, Lng: 88.4144}},
	}
	locIDs := make([]string, 0, len(locSeed))
	for i := range locSeed {
		locSeed[i].LocationID = id.New()
		locIDs = append(locIDs, locSeed[i].LocationID)
		if err := locations.Create(ctx, &locSeed[i]); err != nil {
			slog.Warn("seed location failed", "name", locSeed[i].Name, "err", err)
		}
	}

	party := func(p string) *string { return &p }
	repSeed := []domain.Representative{
		{RepID: id.New(), Name: "Priya Sharma", Position: "Member of Parliament", Party: party("BJP"), LocationID: locIDs[0], TermStart: "2024", TermEnd: "2029"},
		{RepID: id.New(), Name: "Arjun Patil", Position: "Municipal Councillor", Party: party("INC"), LocationID: locIDs[1], TermStart: "2022", TermEnd: "2027"},
		{RepID: id.New(), Name: "Kavya Reddy", Position: "MLA", Party: party("JD(S)"), LocationID: locIDs[2], TermStart: "2023", TermEnd: "2028"},
	}
	for i := range repSeed {
		if err := reps.Create(ctx, &repSeed[i]); err != nil {
			slog.Warn("seed representative failed", "name", repSeed[i].Name, "err", err)
		}
	}

	now := time.Now().UTC()
	budgetSeed := []domain.Budget{
		{BudgetID: id.New(), Title: "Road Resurfacing Programme", Amount: 45_000_000, Category: "infrastructure", LocationID: locIDs[0], FiscalYear: "2025-26", Status: domain.BudgetStatusInProgress, CreatedAt: now, UpdatedAt: now},
		{BudgetID: id.New(), Title: "Primary School Upgrades", Amount: 22_500_000, Category: "education", LocationID: locIDs[1], FiscalYear: "2025-26", Status: domain.BudgetStatusAllocated, CreatedAt: now, UpdatedAt: now},
		{BudgetID: id.New(), Title: "Storm Drain Expansion", Amount: 31_000_000, Category: "sanitation", LocationID: locIDs[2], FiscalYear: "2024-25", Status: domain.BudgetStatusCompleted, CreatedAt: now, UpdatedAt: now},
	}
	for i := range budgetSeed {
		if err := budgets.Create(ctx, &budgetSeed[i]); err != nil {
			slog.Warn("seed budget failed", "title", budgetSeed[i].Title, "err", err)
		}
	}

	speechSeed := []domain.Speech{
		{SpeechID: id.New(), Title: "On Urban Flooding Preparedness", Content: "Honourable Speaker, the monsoon has once again exposed the gaps in our urban drainage...", OriginalLanguage: "hi", SpeakerID: repSeed[0].RepID, Date: now.AddDate(0, -1, 0), House: domain.HouseLokSabha},
		{SpeechID: id.New(), Title: "Digital Access in Rural Schools", Content: "The divide between our cities and villages is no longer measured in kilometres but in bandwidth...", OriginalLanguage: "en", SpeakerID: repSeed[2].RepID, Date: now.AddDate(0, -2, 0), House: domain.HouseRajyaSabha},
	}
	for i := range speechSeed {
		if err := speeches.Create(ctx, &speechSeed[i]); err != nil {
			slog.Warn("seed speech failed", "title", speechSeed[i].Title, "err", err)
		}
	}
}
