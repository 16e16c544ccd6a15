package dictionary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/storage/memory"
	"github.com/mcoot/kumkom/internal/testutil"
)

// failingLexicon errors for one word and counts calls
type failingLexicon struct {
	failOn string
	valid  map[string]bool
	calls  atomic.Int32
}

func (l *failingLexicon) IsValidWord(ctx context.Context, word string) (bool, error) {
	l.calls.Add(1)
	if word == l.failOn {
		return false, errors.New("connection reset")
	}
	return l.valid[word], nil
}

type ServiceSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(NewStoreLexicon(memory.New()), testutil.NopLogger())
	s.ctx = context.Background()
	s.Require().NoError(s.service.LoadWords(s.ctx, []string{"กา", "มา", "การ"}))
}

// IsValidWord tests

func (s *ServiceSuite) TestIsValidWord() {
	ok, err := s.service.IsValidWord(s.ctx, "มา")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.service.IsValidWord(s.ctx, "ขข")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ServiceSuite) TestIsValidWordWrapsGatewayErrors() {
	svc := New(&failingLexicon{failOn: "กา"}, testutil.NopLogger())
	_, err := svc.IsValidWord(s.ctx, "กา")
	s.ErrorIs(err, model.ErrWordValidationFailed)
}

// ValidateAll tests

func (s *ServiceSuite) TestValidateAllAccepts() {
	s.NoError(s.service.ValidateAll(s.ctx, []string{"กา", "มา"}))
}

func (s *ServiceSuite) TestValidateAllReportsFirstInvalidWord() {
	err := s.service.ValidateAll(s.ctx, []string{"กา", "ขข", "คค"})

	s.ErrorIs(err, model.ErrInvalidWord)
	var invalid *model.InvalidWordError
	s.Require().ErrorAs(err, &invalid)
	s.Equal("ขข", invalid.Word)
}

func (s *ServiceSuite) TestValidateAllGatewayFailureIsDistinct() {
	svc := New(&failingLexicon{failOn: "มา", valid: map[string]bool{"กา": true}}, testutil.NopLogger())

	err := svc.ValidateAll(s.ctx, []string{"กา", "มา"})

	s.ErrorIs(err, model.ErrWordValidationFailed)
	s.NotErrorIs(err, model.ErrInvalidWord)
}

// Search and load tests

func (s *ServiceSuite) TestSearchByPrefix() {
	words, err := s.service.Search(s.ctx, "กา")
	s.Require().NoError(err)
	s.Equal([]string{"กา", "การ"}, words)
}

func (s *ServiceSuite) TestSearchUnsupportedLexicon() {
	svc := New(&failingLexicon{}, testutil.NopLogger())
	words, err := svc.Search(s.ctx, "กา")
	s.Require().NoError(err)
	s.Empty(words)
	s.False(svc.CanSearch())
	s.True(s.service.CanSearch())
}

func (s *ServiceSuite) TestLoadFromLineFile() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("ไก่\n\n  ไข่ \n"), 0o600))

	n, err := s.service.LoadFromFile(s.ctx, path)
	s.Require().NoError(err)
	s.Equal(2, n)

	ok, err := s.service.IsValidWord(s.ctx, "ไข่")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *ServiceSuite) TestLoadFromJSONFile() {
	path := filepath.Join(s.T().TempDir(), "word_list.json")
	s.Require().NoError(os.WriteFile(path, []byte(`["ปลา","นก"]`), 0o600))

	n, err := s.service.LoadFromFile(s.ctx, path)
	s.Require().NoError(err)
	s.Equal(2, n)

	count, err := s.service.WordCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(5, count)
}

func (s *ServiceSuite) TestLoadIntoReadOnlyLexiconFails() {
	svc := New(&failingLexicon{}, testutil.NopLogger())
	s.Error(svc.LoadWords(s.ctx, []string{"กา"}))
}
