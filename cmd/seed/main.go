// Command seed writes a synthetic cardiovascular patient dataset in the
// CSV schema the API consumes. Roughly a third of the generated patients
// are pushed past the continuity thresholds so the lost listing and audit
// KPIs have material to work with.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

var firstNames = []string{
	"Juan", "María", "Carlos", "Ana", "José", "Carmen", "Antonio", "Isabel",
	"Francisco", "Dolores", "Manuel", "Pilar", "David", "Mercedes", "Javier",
}

var lastNames = []string{
	"García", "Rodríguez", "González", "Fernández", "López", "Martínez",
	"Sánchez", "Pérez", "Gómez", "Martín", "Jiménez", "Ruiz", "Hernández",
}

func main() {
	out := flag.String("out", "data/patients_data.csv", "output CSV path")
	count := flag.Int("n", 100, "number of patients to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", *out, err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"patient_id", "name", "age", "gender",
		"systolic_bp", "diastolic_bp", "cholesterol", "ldl", "hdl", "glucose", "bmi",
		"smoker", "diabetes", "hypertension",
		"last_control", "last_medication", "last_exam",
		"medication_compliance", "previous_mi", "previous_stroke",
	}
	if err := w.Write(header); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write header: %v\n", err)
		os.Exit(1)
	}

	today := time.Now()

	for i := 1; i <= *count; i++ {
		var daysSinceControl, daysSinceMedication, daysSinceExam int
		if rng.Float64() < 0.3 {
			// Lost patients: all three dates past their thresholds
			daysSinceControl = 181 + rng.Intn(220)
			daysSinceMedication = 91 + rng.Intn(210)
			daysSinceExam = 366 + rng.Intn(135)
		} else {
			daysSinceControl = rng.Intn(181)
			daysSinceMedication = rng.Intn(91)
			daysSinceExam = rng.Intn(366)
		}

		record := []string{
			fmt.Sprintf("PAT%04d", i),
			firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
			strconv.Itoa(45 + rng.Intn(41)),
			pick(rng, "M", "F"),
			strconv.Itoa(100 + rng.Intn(81)),
			strconv.Itoa(60 + rng.Intn(51)),
			strconv.Itoa(150 + rng.Intn(151)),
			strconv.Itoa(70 + rng.Intn(131)),
			strconv.Itoa(30 + rng.Intn(51)),
			strconv.Itoa(70 + rng.Intn(181)),
			strconv.FormatFloat(20+rng.Float64()*18, 'f', 1, 64),
			pick(rng, "Yes", "No"),
			pick(rng, "Yes", "No"),
			pick(rng, "Yes", "No"),
			today.AddDate(0, 0, -daysSinceControl).Format("2006-01-02"),
			today.AddDate(0, 0, -daysSinceMedication).Format("2006-01-02"),
			today.AddDate(0, 0, -daysSinceExam).Format("2006-01-02"),
			pick(rng, "High", "Medium", "Low"),
			pick(rng, "Yes", "No"),
			pick(rng, "Yes", "No"),
		}
		if err := w.Write(record); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write record %d: %v\n", i, err)
			os.Exit(1)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to flush output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d patients to %s\n", *count, *out)
}

func pick(rng *rand.Rand, options ...string) string {
	return options[rng.Intn(len(options))]
}
