package factory

import (
	"context"
	"time"

	"github.com/mcoot/kumkom/internal/dependencies/mocks"
	"github.com/mcoot/kumkom/internal/services/auth"
	"github.com/mcoot/kumkom/internal/services/dictionary"
	"github.com/mcoot/kumkom/internal/storage/memory"
	"github.com/mcoot/kumkom/internal/testutil"
)

// TestWords is the word list LoadTestDictionary imports
var TestWords = []string{
	// two letters
	"กา", "ขา", "งา", "ตา", "นา", "ปา", "มา", "ยา", "รา", "ลา", "หา",
	"กร", "คน", "ดี", "มี", "ปู", "ดู", "รู", "หู", "งู",
	// three letters
	"กาม", "กาน", "ตาม", "นาม", "ยาม", "ลาน", "มาก", "นาก", "ปาก",
	"กิน", "ดิน", "บิน", "ตีน", "ลม", "ผม", "นม", "กลม",
	// longer
	"ทะเลสาบ", "มะนาว", "ขนม", "นกยูง", "กระดาน",
}

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(
		store,
		dictionary.NewStoreLexicon(store),
		mockClock,
		mockRandom,
		auth.DefaultConfig(),
		testutil.NopLogger(),
	)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small Thai dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	return t.DictionaryService.LoadWords(context.Background(), TestWords)
}
