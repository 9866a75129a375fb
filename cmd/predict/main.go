package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/renatmannanov/gpx-predict/internal/config"
	"github.com/renatmannanov/gpx-predict/internal/database"
	"github.com/renatmannanov/gpx-predict/internal/gpx"
	"github.com/renatmannanov/gpx-predict/internal/models"
	"github.com/renatmannanov/gpx-predict/internal/personalization"
	"github.com/renatmannanov/gpx-predict/internal/prediction"
	"github.com/renatmannanov/gpx-predict/internal/repository"
	"github.com/renatmannanov/gpx-predict/internal/threshold"
)

func main() {
	var (
		inputFile  = flag.String("i", "", "Input GPX file")
		domain     = flag.String("domain", "hiking", "Activity domain: hiking or trail_run")
		modelList  = flag.String("models", "", "Comma-separated pace models (default: domain defaults)")
		basePace   = flag.Float64("base-pace", 0, "Flat pace in min/km for grade-adjusted models")
		userID     = flag.String("user", "", "User ID for personalized variants (requires -db data)")
		withFatigue = flag.Bool("fatigue", false, "Apply the fatigue model")
		roundTrip  = flag.Bool("round-trip", false, "Add the mirrored return leg")
		experience = flag.String("experience", "regular", "Hiker experience: beginner, casual, regular, experienced")
		sunsetHour = flag.Int("sunset", 20, "Sunset hour for the late-return warning")
		segments   = flag.Bool("segments", false, "Include the per-segment breakdown")
		asJSON     = flag.Bool("json", false, "Output the full prediction as JSON")
	)

	flag.Usage = func() {
		fmt.Printf("predict - terrain-aware time prediction for GPX routes\n\n")
		fmt.Printf("usage: predict -i /path/to/route.gpx\n\n")
		fmt.Printf("examples:\n")
		fmt.Printf("  predict -i route.gpx\n")
		fmt.Printf("  predict -i route.gpx -domain trail_run -base-pace 5.5 -fatigue\n")
		fmt.Printf("  predict -i route.gpx -user renat -json\n\n")
		fmt.Printf("options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()

	file, err := gpx.Parse(*inputFile)
	if err != nil {
		log.Fatalf("Failed to read route: %v", err)
	}

	points, err := file.TrackPoints()
	if err != nil {
		log.Fatalf("Failed to extract points: %v", err)
	}
	summary := gpx.Summarize(points)

	opts := prediction.Options{
		Domain:          models.ActivityDomain(*domain),
		BasePaceMinKm:   *basePace,
		Fatigue:         *withFatigue,
		RoundTrip:       *roundTrip,
		SunsetHour:      *sunsetHour,
		IncludeSegments: *segments,
	}
	if opts.BasePaceMinKm == 0 {
		opts.BasePaceMinKm = cfg.BasePaceMinKm
	}
	if *modelList != "" {
		opts.Models = strings.Split(*modelList, ",")
	}

	profile := prediction.DefaultHikerProfile()
	profile.Experience = prediction.ExperienceLevel(*experience)
	profile.MaxAltitudeM = summary.MaxElevationM
	opts.Hiker = &profile

	if *userID != "" {
		lookup, splits := loadLookup(cfg, *userID, opts.Domain)
		opts.Lookup = lookup
		if opts.Domain == models.DomainTrailRun && len(splits) > 0 {
			opts.UphillThresholdPercent = threshold.DetectFromSplits(splits)
		}
	}

	result, err := prediction.Predict(points, opts)
	if err != nil {
		log.Fatalf("Prediction failed: %v", err)
	}

	if *asJSON {
		output := struct {
			Name       string                  `json:"name,omitempty"`
			Summary    models.RouteSummary     `json:"summary"`
			Prediction *models.RoutePrediction `json:"prediction"`
		}{file.Name(), summary, result}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			log.Fatalf("Failed to encode output: %v", err)
		}
		return
	}

	printReport(file.Name(), summary, result, profile, *sunsetHour)
}

// loadLookup builds a personalized pace lookup from stored
// activities. Returns the raw splits too so callers can run threshold
// detection on them; both are nil when no usable history exists.
func loadLookup(cfg *config.Config, userID string, domain models.ActivityDomain) (*personalization.Lookup, []models.Split) {
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Printf("Personalization unavailable: %v", err)
		return nil, nil
	}

	sport := "hike"
	if domain == models.DomainTrailRun {
		sport = "run"
	}

	repo := repository.NewActivityRepository(database.GetDB())
	splits, err := repo.GetAllSplits(userID, sport)
	if err != nil {
		log.Printf("Personalization unavailable: %v", err)
		return nil, nil
	}
	if len(splits) == 0 {
		log.Printf("No recorded %s splits for user %s, using models only", sport, userID)
		return nil, nil
	}

	builder := personalization.NewBuilder()
	builder.PaceCeilingMinKm = cfg.PaceCeilingMinKm

	lookup := personalization.NewLookup(builder.BuildProfile(splits, domain))
	lookup.MinSamples = cfg.MinSamplesPerCategory
	for effort, pct := range cfg.EffortPercentiles {
		lookup.EffortPercentiles[models.EffortLevel(effort)] = pct
	}
	return lookup, splits
}

func printReport(name string, summary models.RouteSummary, result *models.RoutePrediction, profile prediction.HikerProfile, sunsetHour int) {
	if name != "" {
		fmt.Printf("Route: %s\n", name)
	}
	fmt.Printf("Distance: %.1f km, ascent %.0f m, descent %.0f m",
		result.TotalDistanceKm, result.TotalAscentM, result.TotalDescentM)
	if summary.IsLoop {
		fmt.Printf(" (loop)")
	}
	fmt.Println()
	fmt.Println()

	for _, v := range result.Variants {
		label := v.Name
		if v.Personalized {
			label = fmt.Sprintf("%s (%d/%d segments personal)",
				v.Name, v.PersonalSegments, v.PersonalSegments+v.ModelSegments)
		}
		fmt.Printf("  %-45s %s\n", label, formatHours(v.TotalHours))
	}

	if result.Domain == models.DomainHiking && len(result.Variants) > 0 {
		plan := prediction.PlanOuting(result.Variants[0].TotalHours, profile, sunsetHour)
		fmt.Println()
		fmt.Printf("Plan: moving %s, rest %s, lunch %s, total %s (safe %s)\n",
			formatHours(plan.MovingHours), formatHours(plan.RestHours),
			formatHours(plan.LunchHours), formatHours(plan.TotalHours),
			formatHours(plan.SafeHours))
		fmt.Printf("Recommended start: %s\n", plan.RecommendedStart)
	}

	for _, w := range result.Warnings {
		fmt.Printf("\n[%s] %s\n", strings.ToUpper(string(w.Level)), w.Message)
	}
}

func formatHours(hours float64) string {
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	return fmt.Sprintf("%dh %02dm", h, m)
}
