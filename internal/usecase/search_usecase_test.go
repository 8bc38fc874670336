package usecase

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/yourusername/supplier-research-bot/internal/infrastructure/storage"
)

type searchFixture struct {
	catalog   *countingCatalog
	ai        *fakeAI
	reports   *fakeReportBuilder
	messenger *fakeMessenger
	uc        SearchUseCase
}

func newSearchFixture(t *testing.T) *searchFixture {
	t.Helper()
	logger, _ := test.NewNullLogger()

	f := &searchFixture{
		catalog:   &countingCatalog{CatalogRepository: storage.NewDefaultCatalogRepository()},
		ai:        &fakeAI{},
		reports:   &fakeReportBuilder{dir: t.TempDir()},
		messenger: newFakeMessenger(),
	}
	f.uc = NewSearchUseCase(
		f.catalog,
		NewPricingUseCase(defaultPricing, rand.New(rand.NewSource(3))),
		NewAnalysisUseCase(f.ai, 0, logger),
		f.reports,
		f.messenger,
		SearchSettings{MinSearchTextLength: 3, MaxProductsPerRequest: 5, ChunkSize: 4000},
		logger,
	)
	return f
}

func containsText(texts []string, sub string) bool {
	for _, s := range texts {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func TestSearch_TwoProducts(t *testing.T) {
	f := newSearchFixture(t)

	res, err := f.uc.Search(context.Background(), 42, "Wireless Earbuds, Smart Watch")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(res.Found) != 2 || res.Found[0].ID != "PROD001" || res.Found[1].ID != "PROD002" || len(res.NotFound) != 0 {
		t.Fatalf("found = %+v, not found = %v", res.Found, res.NotFound)
	}

	if len(f.reports.entries) != 2 {
		t.Fatalf("report entries = %d", len(f.reports.entries))
	}
	for _, e := range f.reports.entries {
		if len(e.Offers) != 10 {
			t.Errorf("%s offers = %d, want 10", e.Product.Name, len(e.Offers))
		}
		for i := 1; i < len(e.Offers); i++ {
			if e.Offers[i].FinalPriceUSD.LessThan(e.Offers[i-1].FinalPriceUSD) {
				t.Errorf("%s offers are not ranked", e.Product.Name)
			}
		}
	}

	if len(res.Analyses) != 2 || res.Analyses[0].Degraded() || res.Analyses[1].Degraded() {
		t.Errorf("analyses = %+v", res.Analyses)
	}

	texts := f.messenger.texts()
	for _, want := range []string{"Searching suppliers for: *Wireless Earbuds, Smart Watch*", "Found: 2 product(s)", "SUPPLIER ANALYSIS RESULTS", "WIRELESS EARBUDS - SUPPLIER ANALYSIS", "SMART WATCH - SUPPLIER ANALYSIS", "Analysis complete"} {
		if !containsText(texts, want) {
			t.Errorf("no message contains %q", want)
		}
	}
	if texts[len(texts)-1] != MsgAnalysisComplete {
		t.Errorf("last message = %q", texts[len(texts)-1])
	}

	if len(f.messenger.documents) != 1 {
		t.Fatalf("documents = %d, want 1", len(f.messenger.documents))
	}
	doc := f.messenger.documents[0]
	if !doc.existed || doc.filename != ReportFileName || doc.caption != ReportCaption {
		t.Errorf("document = %+v", doc)
	}
	if _, err := os.Stat(res.ReportPath); !os.IsNotExist(err) {
		t.Errorf("report file should be removed, stat err = %v", err)
	}

	// status xabari: 2 ta tahrir va o'chirish
	statusID := 2
	if got := f.messenger.edits[statusID]; !reflect.DeepEqual(got, []string{MsgGeneratingReport, MsgAnalyzing}) {
		t.Errorf("status edits = %v", got)
	}
	if !reflect.DeepEqual(f.messenger.deleted, []int{statusID}) {
		t.Errorf("deleted = %v", f.messenger.deleted)
	}
}

func TestSearch_PartialMatch(t *testing.T) {
	f := newSearchFixture(t)

	res, err := f.uc.Search(context.Background(), 1, "yoga mat, flux capacitor")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(res.Found) != 1 || !reflect.DeepEqual(res.NotFound, []string{"flux capacitor"}) {
		t.Errorf("found = %v, not found = %v", res.Found, res.NotFound)
	}
	if !containsText(f.messenger.texts(), "Not found: flux capacitor") {
		t.Error("status should list unmatched names")
	}
}

func TestSearch_EscapesUserTextInMarkdown(t *testing.T) {
	f := newSearchFixture(t)

	if _, err := f.uc.Search(context.Background(), 1, "yoga mat, phone_case, led*lamp"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	texts := f.messenger.texts()
	if !containsText(texts, `Searching suppliers for: *yoga mat, phone\_case, led\*lamp*`) {
		t.Errorf("query not escaped: %q", texts[0])
	}
	if !containsText(texts, `Not found: phone\_case, led\*lamp`) {
		t.Error("unmatched names not escaped")
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := map[string]string{
		"plain text": "plain text",
		"a_b*c`d[e]": "a\\_b\\*c\\`d\\[e]",
		"":           "",
	}
	for in, want := range tests {
		if got := EscapeMarkdown(in); got != want {
			t.Errorf("EscapeMarkdown(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSearch_NothingFound(t *testing.T) {
	f := newSearchFixture(t)

	res, err := f.uc.Search(context.Background(), 1, "xyzzynomatch")
	if !errors.Is(err, ErrNoProductsFound) {
		t.Fatalf("Search() error = %v, want ErrNoProductsFound", err)
	}
	if len(res.NotFound) != 1 {
		t.Errorf("not found = %v", res.NotFound)
	}
	if f.reports.entries != nil || f.ai.calls() != 0 {
		t.Error("no report or analysis expected")
	}
	texts := f.messenger.texts()
	if texts[len(texts)-1] != MsgNoProducts {
		t.Errorf("last message = %q", texts[len(texts)-1])
	}
}

func TestSearch_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
		lookups int
	}{
		{name: "too short", text: "ab", wantErr: ErrQueryTooShort},
		{name: "short after trim", text: "  a  ", wantErr: ErrQueryTooShort},
		{name: "only commas", text: ", , ,", wantErr: ErrNoValidNames},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSearchFixture(t)
			_, err := f.uc.Search(context.Background(), 1, tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Search(%q) error = %v, want %v", tt.text, err, tt.wantErr)
			}
			if f.catalog.lookups != tt.lookups {
				t.Errorf("catalog lookups = %d, want %d", f.catalog.lookups, tt.lookups)
			}
			if len(f.messenger.sent) == 0 {
				t.Error("user should get a message")
			}
		})
	}
}

func TestSearch_ReportFailure(t *testing.T) {
	f := newSearchFixture(t)
	f.reports.err = errors.New("disk full")

	_, err := f.uc.Search(context.Background(), 1, "Yoga Mat")
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("Search() error = %v", err)
	}
	if f.ai.calls() != 0 {
		t.Error("analysis should not run after report failure")
	}
	if got := f.messenger.edits[2]; len(got) == 0 || got[len(got)-1] != MsgProcessingError {
		t.Errorf("status edits = %v, want generic error last", got)
	}
}

func TestSearch_ErrorFallsBackToNewMessage(t *testing.T) {
	f := newSearchFixture(t)
	f.reports.err = errors.New("disk full")
	f.messenger.editErr = errors.New("message can't be edited")

	if _, err := f.uc.Search(context.Background(), 1, "Yoga Mat"); err == nil {
		t.Fatal("expected error")
	}
	texts := f.messenger.texts()
	if texts[len(texts)-1] != MsgProcessingError {
		t.Errorf("last message = %q, want generic error", texts[len(texts)-1])
	}
}

func TestSearch_DocumentFailureRemovesReport(t *testing.T) {
	f := newSearchFixture(t)
	f.messenger.docErr = errors.New("request entity too large")

	res, err := f.uc.Search(context.Background(), 1, "Backpack")
	if err == nil {
		t.Fatal("expected error")
	}
	if _, statErr := os.Stat(res.ReportPath); !os.IsNotExist(statErr) {
		t.Errorf("report file should be removed on failure, stat err = %v", statErr)
	}
	if len(f.messenger.deleted) != 0 {
		t.Error("status message should stay with the error text")
	}
}

func TestSearch_DegradedAnalysisStillDelivers(t *testing.T) {
	f := newSearchFixture(t)
	f.ai.failOn = "Smart Watch"
	f.ai.err = errTransport

	res, err := f.uc.Search(context.Background(), 1, "Smart Watch, Yoga Mat")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if !res.Analyses[0].Degraded() || res.Analyses[1].Degraded() {
		t.Errorf("analyses = %+v", res.Analyses)
	}
	if !containsText(f.messenger.texts(), AnalysisUnavailable) || len(f.messenger.documents) != 1 {
		t.Error("placeholder analysis and report should still be delivered")
	}
}

func TestSearch_LongAnalysisIsChunked(t *testing.T) {
	f := newSearchFixture(t)
	f.ai.reply = strings.Repeat("Supplier insight line.\n", 400)

	if _, err := f.uc.Search(context.Background(), 1, "Yoga Mat"); err != nil {
		t.Fatal(err)
	}
	chunks := 0
	for _, text := range f.messenger.texts() {
		if utf8.RuneCountInString(text) > 4000 {
			t.Errorf("message of %d runes exceeds chunk size", utf8.RuneCountInString(text))
		}
		if strings.Contains(text, "Supplier insight line.") {
			chunks++
		}
	}
	if chunks < 3 {
		t.Errorf("analysis chunks = %d, want >= 3", chunks)
	}
}

func TestParseProductNames(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  []string
	}{
		{"Wireless Earbuds, Smart Watch", 5, []string{"Wireless Earbuds", "Smart Watch"}},
		{" a ,, b , ", 5, []string{"a", "b"}},
		{"a,b,c,d,e,f,g", 5, []string{"a", "b", "c", "d", "e"}},
		{", ,", 5, nil},
		{"single", 0, []string{"single"}},
	}
	for _, tt := range tests {
		if got := ParseProductNames(tt.in, tt.limit); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseProductNames(%q, %d) = %v, want %v", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestChunkText(t *testing.T) {
	if got := ChunkText("short", 10); !reflect.DeepEqual(got, []string{"short"}) {
		t.Errorf("ChunkText(short) = %v", got)
	}

	text := strings.Repeat("ж", 25)
	got := ChunkText(text, 10)
	if len(got) != 3 || utf8.RuneCountInString(got[0]) != 10 || utf8.RuneCountInString(got[2]) != 5 {
		t.Errorf("ChunkText(runes) = %v", got)
	}

	lines := "line one\nline two\nline three"
	got = ChunkText(lines, 12)
	if got[0] != "line one\n" || strings.Join(got, "") != lines {
		t.Errorf("ChunkText(lines) = %q", got)
	}
	for _, c := range got {
		if utf8.RuneCountInString(c) > 12 {
			t.Errorf("chunk %q longer than 12", c)
		}
	}
}
