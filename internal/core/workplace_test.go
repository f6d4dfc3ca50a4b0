package core

import "testing"

func TestWorkplaceStatistics_Partition(t *testing.T) {
	ds := buildDataset(t,
		alumniRow(Row{"Current Workplace": "SNB"}),
		alumniRow(Row{"Current Workplace": "Aramco"}),
		alumniRow(Row{"Current Workplace": ""}),
		alumniRow(Row{"Current Workplace": "N/A"}),
		alumniRow(Row{"Current Workplace": "Confidential"}),
	)

	stats := WorkplaceStatistics(ds, allCollegesAllYears("2015-2016 FALL"))

	if stats.TotalAlumni != 5 {
		t.Errorf("TotalAlumni = %d, want 5", stats.TotalAlumni)
	}
	if stats.ValidEntries != 2 || stats.EmptyEntries != 3 {
		t.Errorf("partition = %d valid / %d empty, want 2/3", stats.ValidEntries, stats.EmptyEntries)
	}

	wantEmpty := map[string]int{"EMPTY": 1, "PLACEHOLDER": 1, "CONFIDENTIAL": 1}
	for _, nc := range stats.EmptyBreakdown {
		if wantEmpty[nc.Name] != nc.Count {
			t.Errorf("empty breakdown %s = %d, want %d", nc.Name, nc.Count, wantEmpty[nc.Name])
		}
	}
}

func TestWorkplaceStatistics_TopEmployers(t *testing.T) {
	var rows []Row
	add := func(n int, workplace string) {
		for i := 0; i < n; i++ {
			rows = append(rows, alumniRow(Row{"Current Workplace": workplace}))
		}
	}
	add(3, "SNB")
	add(2, "SNB Ltd.") // same canonical employer as "SNB"
	add(4, "Aramco")
	add(1, "Acme Corp")
	add(1, "Zenith Corp") // ties with Acme; Acme was seen first

	ds := buildDataset(t, rows...)
	stats := WorkplaceStatistics(ds, allCollegesAllYears("2015-2016 FALL"))

	want := []NameCount{
		{"SAUDI NATIONAL BANK", 5},
		{"SAUDI ARAMCO", 4},
		{"ACME", 1},
		{"ZENITH", 1},
	}
	if len(stats.TopEmployers) != len(want) {
		t.Fatalf("TopEmployers = %+v, want %+v", stats.TopEmployers, want)
	}
	for i, w := range want {
		if stats.TopEmployers[i] != w {
			t.Errorf("TopEmployers[%d] = %+v, want %+v", i, stats.TopEmployers[i], w)
		}
	}
}

func TestWorkplaceStatistics_Positions(t *testing.T) {
	ds := buildDataset(t,
		alumniRow(Row{"Current Position": "CEO"}),
		alumniRow(Row{"Current Position": "Founder & CEO"}),
		alumniRow(Row{"Current Position": "IT Director"}),
		alumniRow(Row{"Current Position": "Engineer"}),
		alumniRow(Row{"Current Position": ""}),
	)

	stats := WorkplaceStatistics(ds, allCollegesAllYears("2015-2016 FALL"))

	if stats.Positions[PositionCSuite] != 2 {
		t.Errorf("C-SUITE = %d, want 2", stats.Positions[PositionCSuite])
	}
	if stats.Positions[PositionDirector] != 1 {
		t.Errorf("DIRECTOR = %d, want 1", stats.Positions[PositionDirector])
	}
	if stats.Positions[PositionOther] != 2 {
		t.Errorf("OTHER = %d, want 2", stats.Positions[PositionOther])
	}
	if stats.HighPositionCount != 3 {
		t.Errorf("HighPositionCount = %d, want 3", stats.HighPositionCount)
	}
}

func TestWorkplaceStatistics_NationalityDistribution(t *testing.T) {
	ds := buildDataset(t,
		alumniRow(Row{"Nationality": "Saudi Arabia"}),
		alumniRow(Row{"Nationality": "Saudi Arabia"}),
		alumniRow(Row{"Nationality": "Jordan"}),
		alumniRow(Row{"Nationality": ""}),
	)

	stats := WorkplaceStatistics(ds, allCollegesAllYears("2015-2016 FALL"))

	want := []NameCount{{"Saudi Arabia", 2}, {"Jordan", 1}}
	if len(stats.NationalityDist) != len(want) {
		t.Fatalf("NationalityDist = %+v, want %+v", stats.NationalityDist, want)
	}
	for i, w := range want {
		if stats.NationalityDist[i] != w {
			t.Errorf("NationalityDist[%d] = %+v, want %+v", i, stats.NationalityDist[i], w)
		}
	}
}
