package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/renatmannanov/gpx-predict/internal/calibration"
	"github.com/renatmannanov/gpx-predict/internal/config"
	"github.com/renatmannanov/gpx-predict/internal/database"
	"github.com/renatmannanov/gpx-predict/internal/models"
	"github.com/renatmannanov/gpx-predict/internal/pacemodel"
	"github.com/renatmannanov/gpx-predict/internal/personalization"
	"github.com/renatmannanov/gpx-predict/internal/repository"
)

func main() {
	var (
		userID    = flag.String("user", "", "User ID to backtest")
		sport     = flag.String("sport", "hike", "Sport to backtest: hike or run")
		modelName = flag.String("model", "", "Pace model to evaluate (default: tobler for hike, strava_minetti_gap for run)")
		basePace  = flag.Float64("base-pace", 0, "Flat pace in min/km for grade-adjusted models")
	)

	flag.Usage = func() {
		fmt.Printf("backtest - replay recorded activities against the prediction engine\n\n")
		fmt.Printf("usage: backtest -user <id> [-sport hike|run]\n\n")
		fmt.Printf("options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *userID == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if *basePace == 0 {
		*basePace = cfg.BasePaceMinKm
	}
	if *modelName == "" {
		*modelName = pacemodel.ModelTobler
		if *sport == "run" {
			*modelName = pacemodel.ModelGAPHybrid
		}
	}

	calc, err := pacemodel.ForName(*modelName, *basePace)
	if err != nil {
		log.Fatalf("Invalid model: %v", err)
	}

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	repo := repository.NewActivityRepository(database.GetDB())
	activities, err := repo.GetActivities(models.ActivityFilter{UserID: *userID, Sport: *sport})
	if err != nil {
		log.Fatalf("Failed to load activities: %v", err)
	}
	if len(activities) == 0 {
		log.Fatalf("No %s activities recorded for user %s", *sport, *userID)
	}

	domain := models.DomainHiking
	if *sport == "run" {
		domain = models.DomainTrailRun
	}

	for i := range activities {
		activities[i].Splits, err = repo.GetSplits(activities[i].ID)
		if err != nil {
			log.Fatalf("Failed to load splits for activity %d: %v", activities[i].ID, err)
		}
	}

	var modelObs, personalObs []calibration.Observation
	for i, activity := range activities {
		if activity.MovingTimeS <= 0 || len(activity.Splits) == 0 {
			continue
		}
		actual := float64(activity.MovingTimeS) / 3600

		modelObs = append(modelObs, calibration.Observation{
			PredictedHours: predictFromSplits(activity.Splits, calc, nil, ""),
			ActualHours:    actual,
		})

		// Leave-one-out: the profile never sees the activity it is
		// predicting
		lookup := buildLookup(cfg, activities, i, domain)
		if lookup != nil {
			personalObs = append(personalObs, calibration.Observation{
				PredictedHours: predictFromSplits(activity.Splits, calc, lookup, models.EffortModerate),
				ActualHours:    actual,
			})
		}
	}

	fmt.Printf("Backtest for user %s, %s, model %s (%d activities)\n\n",
		*userID, *sport, *modelName, len(modelObs))
	printMetrics("Model only", calibration.Evaluate(modelObs))
	if len(personalObs) > 0 {
		printMetrics("Personalized (leave-one-out)", calibration.Evaluate(personalObs))
	}
}

// predictFromSplits replays an activity's own geometry through the
// engine: each recorded split becomes a pseudo-segment
func predictFromSplits(splits []models.Split, calc pacemodel.Calculator, lookup *personalization.Lookup, effort models.EffortLevel) float64 {
	total := 0.0
	for _, s := range splits {
		if s.DistanceKm <= 0 {
			continue
		}

		if lookup != nil {
			if pace, ok := lookup.Pace(models.ClassifyGradient(s.GradientPercent()), effort); ok {
				total += s.DistanceKm * pace / 60
				continue
			}
		}

		gain, loss := 0.0, 0.0
		if s.ElevationChangeM > 0 {
			gain = s.ElevationChangeM
		} else {
			loss = -s.ElevationChangeM
		}
		gradient := s.GradientPercent()
		result := calc.Segment(pacemodel.SegmentInput{
			DistanceKm:      s.DistanceKm,
			ElevationGainM:  gain,
			ElevationLossM:  loss,
			GradientPercent: gradient,
			GradientDegrees: math.Atan(gradient/100) * 180 / math.Pi,
			IsAscent:        gradient > 0,
			IsDescent:       gradient < 0,
		}, 1.0)
		total += result.TimeHours
	}
	return total
}

func buildLookup(cfg *config.Config, activities []models.Activity, exclude int, domain models.ActivityDomain) *personalization.Lookup {
	var splits []models.Split
	for i, a := range activities {
		if i == exclude {
			continue
		}
		splits = append(splits, a.Splits...)
	}
	if len(splits) == 0 {
		return nil
	}

	builder := personalization.NewBuilder()
	builder.PaceCeilingMinKm = cfg.PaceCeilingMinKm

	lookup := personalization.NewLookup(builder.BuildProfile(splits, domain))
	lookup.MinSamples = cfg.MinSamplesPerCategory
	return lookup
}

func printMetrics(label string, m calibration.Metrics) {
	fmt.Printf("%s:\n", label)
	fmt.Printf("  MAE:  %.2f h\n", m.MAE)
	fmt.Printf("  MAPE: %.1f %%\n", m.MAPE)
	fmt.Printf("  Bias: %+.2f h (n=%d)\n\n", m.Bias, m.Count)
}
