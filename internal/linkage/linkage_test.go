package linkage

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/cxd309/suspension-engine/internal/geometry"
	"github.com/cxd309/suspension-engine/internal/kinematics"
)

func TestPolynomialAt(t *testing.T) {
	p := Polynomial{1, 2, 3} // 1 + 2x + 3x²
	if got := p.At(2); got != 17 {
		t.Errorf("At(2) = %v, want 17", got)
	}
	if got := Polynomial(nil).At(5); got != 0 {
		t.Errorf("empty polynomial = %v, want 0", got)
	}
}

func TestFitPolynomial(t *testing.T) {
	want := Polynomial{0.5, 2.2, -0.01, 0.0002}
	var xs, ys []float64
	for x := 0.0; x <= 65; x += 0.5 {
		xs = append(xs, x)
		ys = append(ys, want.At(x))
	}
	got, err := FitPolynomial(xs, ys, 3)
	if err != nil {
		t.Fatalf("FitPolynomial: %v", err)
	}
	for _, x := range []float64{0, 10, 33.3, 65} {
		if math.Abs(got.At(x)-want.At(x)) > 1e-6 {
			t.Errorf("fit(%v) = %v, want %v", x, got.At(x), want.At(x))
		}
	}
}

func TestFitPolynomialReducesDegree(t *testing.T) {
	got, err := FitPolynomial([]float64{0, 1}, []float64{1, 3}, 3)
	if err != nil {
		t.Fatalf("FitPolynomial: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(coeffs) = %d, want 2", len(got))
	}
	if math.Abs(got.At(0.5)-2) > 1e-9 {
		t.Errorf("At(0.5) = %v, want 2", got.At(0.5))
	}
}

func TestFitPolynomialErrors(t *testing.T) {
	if _, err := FitPolynomial(nil, nil, 3); err == nil {
		t.Error("expected an error for no points")
	}
	if _, err := FitPolynomial([]float64{1}, []float64{1, 2}, 3); err == nil {
		t.Error("expected an error for mismatched lengths")
	}
}

func TestSummarizeDefault(t *testing.T) {
	res := kinematics.Analyze(geometry.Default())
	sum := Summarize(res)

	if sum.Samples != 131 || sum.Degenerate != 0 {
		t.Errorf("Samples/Degenerate = %d/%d", sum.Samples, sum.Degenerate)
	}
	if sum.MaxStroke != 65 {
		t.Errorf("MaxStroke = %v, want 65", sum.MaxStroke)
	}
	last := res.States[len(res.States)-1]
	if sum.MaxWheelTravel != last.Travel {
		t.Errorf("MaxWheelTravel = %v, want %v", sum.MaxWheelTravel, last.Travel)
	}
	if sum.LeverageMin > sum.LeverageMean || sum.LeverageMean > sum.LeverageMax {
		t.Errorf("leverage min/mean/max out of order: %v %v %v", sum.LeverageMin, sum.LeverageMean, sum.LeverageMax)
	}
	if sum.SagTravel < SagFraction*sum.MaxWheelTravel {
		t.Errorf("SagTravel = %v, below %v", sum.SagTravel, SagFraction*sum.MaxWheelTravel)
	}
	if len(sum.TravelFit) != 4 {
		t.Fatalf("TravelFit = %v, want a cubic", sum.TravelFit)
	}
	if math.Abs(sum.TravelFit.At(0)) > 1 || math.Abs(sum.TravelFit.At(65)-last.Travel) > 1 {
		t.Errorf("cubic fit misses the end points: %v / %v", sum.TravelFit.At(0), sum.TravelFit.At(65))
	}
}

func TestSummarizeAllDegenerate(t *testing.T) {
	g := geometry.Default()
	g.SwingarmLength = 30
	sum := Summarize(kinematics.Analyze(g))
	if sum.Degenerate != sum.Samples || sum.MaxWheelTravel != 0 || sum.TravelFit != nil {
		t.Errorf("got %+v", sum)
	}
}

func TestWriteSST(t *testing.T) {
	res := kinematics.Analyze(geometry.Default())
	var buf bytes.Buffer
	if err := WriteSST(&buf, res); err != nil {
		t.Fatalf("WriteSST: %v", err)
	}

	maxTravel := res.States[len(res.States)-1].Travel
	var lines int
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var w, l float64
		if _, err := fmt.Sscanf(sc.Text(), "%f,%f", &w, &l); err != nil {
			t.Fatalf("line %d %q: %v", lines, sc.Text(), err)
		}
		if w != float64(lines) {
			t.Errorf("line %d: wheel travel %v", lines, w)
		}
		if l <= 0 {
			t.Errorf("line %d: leverage %v", lines, l)
		}
		lines++
	}
	if want := int(math.Floor(maxTravel)) + 1; lines != want {
		t.Errorf("wrote %d lines, want %d", lines, want)
	}
}

func TestWriteSSTNeedsSolvedSamples(t *testing.T) {
	g := geometry.Default()
	g.SwingarmLength = 30
	if err := WriteSST(&bytes.Buffer{}, kinematics.Analyze(g)); err == nil {
		t.Error("expected an error for an unsolvable linkage")
	}
}

func TestWriteCSV(t *testing.T) {
	res := kinematics.Analyze(geometry.Default())
	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV back: %v", err)
	}
	if len(records) != len(res.States)+1 {
		t.Fatalf("got %d records, want %d", len(records), len(res.States)+1)
	}
	if records[0][0] != "stroke_mm" || len(records[1]) != len(csvHeader) {
		t.Errorf("unexpected layout: %v / %v", records[0], records[1])
	}
	if records[len(records)-1][0] != "65.0000" {
		t.Errorf("last stroke = %q", records[len(records)-1][0])
	}
}
