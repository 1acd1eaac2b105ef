package chart

import (
	"strings"

	"partner-dashboard-srv/pkg/analysisapi"
)

// RevenueLine charts monthly deriv and expected revenue. rows must already be
// window-filtered and sorted.
func RevenueLine(rows []analysisapi.MonthlyKPI) Chart {
	if len(rows) == 0 {
		return emptyChart(KindLine, "Monthly Revenue")
	}

	labels := make([]string, len(rows))
	deriv := make([]float64, len(rows))
	expected := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.Month
		deriv[i] = r.DerivRevenue
		expected[i] = r.ExpectedRevenue
	}

	return Chart{
		Kind:   KindLine,
		Title:  "Monthly Revenue",
		Labels: labels,
		Datasets: []Dataset{
			lineDataset(LabelDerivRevenue, deriv, colorPink),
			lineDataset(LabelExpectedRevenue, expected, colorBlue),
		},
	}
}

// RegionalBars builds one dataset per region over the in-window months. A
// region missing a month gets 0 there; regions that are zero throughout are dropped.
func (w Window) RegionalBars(rows []analysisapi.RegionalRevenue) Chart {
	kept := make([]analysisapi.RegionalRevenue, 0, len(rows))
	labels := make([]string, 0, len(rows))
	for _, r := range rows {
		if w.ContainsLabel(r.Month) {
			kept = append(kept, r)
			labels = append(labels, r.Month)
		}
	}
	months := w.uniqueMonths(labels)
	if len(months) == 0 {
		return emptyChart(KindBar, "Regional Revenue Trends")
	}

	monthIdx := make(map[string]int, len(months))
	for i, m := range months {
		monthIdx[m] = i
	}

	var regions []string
	values := make(map[string][]float64)
	seen := make(map[[2]string]struct{})
	for _, r := range kept {
		v, ok := values[r.Region]
		if !ok {
			regions = append(regions, r.Region)
			v = make([]float64, len(months))
			values[r.Region] = v
		}
		// first row wins for a duplicated (region, month)
		key := [2]string{r.Region, r.Month}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		v[monthIdx[r.Month]] = r.DerivRevenue
	}

	datasets := make([]Dataset, 0, len(regions))
	for i, region := range regions {
		data := values[region]
		if allZero(data) {
			continue
		}
		fill := regionPalette[i%len(regionPalette)]
		datasets = append(datasets, Dataset{
			Label:           region,
			Data:            data,
			BorderColor:     strings.Replace(fill, "0.8", "1", 1),
			BackgroundColor: fill,
			Tension:         lineTension,
			BorderWidth:     2,
		})
	}

	return Chart{Kind: KindBar, Title: "Regional Revenue Trends", Labels: months, Datasets: datasets}
}

func lineDataset(label string, data []float64, c colorPair) Dataset {
	return Dataset{
		Label:           label,
		Data:            data,
		BorderColor:     c.border,
		BackgroundColor: c.fill,
		Tension:         lineTension,
	}
}

func allZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
