package snapshotstore_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"toolcompat/analytics"
	"toolcompat/analytics/snapshotstore"
)

type SnapshotStoreSuite struct {
	suite.Suite
	path  string
	store *snapshotstore.Store
}

func TestSnapshotStoreSuite(t *testing.T) {
	suite.Run(t, new(SnapshotStoreSuite))
}

func (s *SnapshotStoreSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "analytics.db")
	store, err := snapshotstore.Open(s.path)
	s.Require().NoError(err)
	s.store = store
}

func (s *SnapshotStoreSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

// exportBlob produces a real analytics export to store.
func (s *SnapshotStoreSuite) exportBlob(tool string) []byte {
	state := analytics.NewState()
	state.RecordResolution(tool, false, "no-resolution", "")
	blob, err := state.Export()
	s.Require().NoError(err)
	return blob
}

// WAL is persistent in the database file, so a second handle sees the
// mode Open set.
func (s *SnapshotStoreSuite) TestOpenEnablesWAL() {
	db, err := sql.Open("sqlite", s.path)
	s.Require().NoError(err)
	defer db.Close()

	var mode string
	s.Require().NoError(db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	s.Equal("wal", strings.ToLower(mode))
}

func (s *SnapshotStoreSuite) TestLatestOnEmptyStore() {
	_, err := s.store.Latest(context.Background())
	s.Require().ErrorIs(err, snapshotstore.ErrNoSnapshots)
}

func (s *SnapshotStoreSuite) TestSaveAndLatest() {
	ctx := context.Background()

	first := s.exportBlob("first_tool")
	second := s.exportBlob("second_tool")
	s.Require().NoError(s.store.Save(ctx, first))
	s.Require().NoError(s.store.Save(ctx, second))

	got, err := s.store.Latest(ctx)
	s.Require().NoError(err)
	s.Equal(string(second), string(got))

	// The round trip back into a State still works.
	restored := analytics.NewState()
	s.Require().NoError(restored.Import(got))
	s.Len(restored.Report().TopMissing, 1)
	s.Equal("second_tool", restored.Report().TopMissing[0].Tool)
}

func (s *SnapshotStoreSuite) TestSaveRejectsNonJSON() {
	err := s.store.Save(context.Background(), []byte("not json"))
	s.Error(err)
}

func (s *SnapshotStoreSuite) TestHistoryNewestFirst() {
	ctx := context.Background()
	blobs := [][]byte{s.exportBlob("a"), s.exportBlob("b"), s.exportBlob("c")}
	for _, b := range blobs {
		s.Require().NoError(s.store.Save(ctx, b))
	}

	snaps, err := s.store.History(ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(snaps, 2)
	s.Equal(string(blobs[2]), string(snaps[0].Blob))
	s.Equal(string(blobs[1]), string(snaps[1].Blob))
	s.NotEmpty(snaps[0].SessionID)
	s.False(snaps[0].CapturedAt.IsZero())
}
