package report

import "testing"

func TestBandsOverrideWinsOverPrice(t *testing.T) {
	a := NewAnnotator(DefaultScenarioOverrides())

	for _, price := range []*float64{nil, fptr(1), fptr(117000)} {
		band := a.Bands("bitcoin", price)
		if band.Bull != "200000" || band.Base != "120000–150000" || band.Bear != "80000–100000" {
			t.Fatalf("override not returned verbatim: %+v", band)
		}
	}
}

func TestBandsComputedFromPrice(t *testing.T) {
	a := NewAnnotator(DefaultScenarioOverrides())

	band := a.Bands("foo", fptr(10))
	if band.Bull != "25.00" || band.Base != "15.00" || band.Bear != "6.00" {
		t.Fatalf("unexpected computed band: %+v", band)
	}

	band = a.Bands("foo", fptr(100000))
	if band.Bull != "250,000.00" || band.Base != "150,000.00" || band.Bear != "60,000.00" {
		t.Fatalf("expected thousands separators: %+v", band)
	}
}

func TestBandsMissingOrNonPositivePrice(t *testing.T) {
	a := NewAnnotator(DefaultScenarioOverrides())

	for _, price := range []*float64{nil, fptr(0), fptr(-1)} {
		band := a.Bands("foo", price)
		if band.Bull != Dash || band.Base != Dash || band.Bear != Dash {
			t.Fatalf("expected dash sentinel, got %+v", band)
		}
	}
}
