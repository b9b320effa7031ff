package importer_test

import (
	"context"
	"strings"
	"testing"

	"registro/internal/importer"
	"registro/pkg/domain"
	"registro/pkg/storage"

	mockstorage "registro/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestImporter(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, *importer.Importer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, importer.New(st)
}

func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestImporter_ImportStudents(t *testing.T) {
	ctrl, st, imp := newTestImporter(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().EnsureGroups(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, names ...string) ([]domain.Group, error) {
				require.ElementsMatch(t, []string{"INF-2A", "MEC-1B"}, names)

				groups := make([]domain.Group, 0, len(names))
				for i, name := range names {
					groups = append(groups, domain.Group{ID: domain.GroupID(i + 1), Name: name})
				}

				return groups, nil
			},
		)
		tx.EXPECT().UpsertStudents(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, students ...domain.Student) ([]domain.Student, error) {
				require.Len(t, students, 2)
				require.Equal(t, "IQ3000123", students[0].Badge)
				require.Equal(t, "Maria da Silva", students[0].Name)

				stored := make([]domain.Student, len(students))
				copy(stored, students)
				for i := range stored {
					stored[i].ID = domain.StudentID(i + 1)
				}

				return stored, nil
			},
		)
		tx.EXPECT().AddGroupMembers(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, members ...domain.GroupMember) error {
				require.Len(t, members, 2)

				return nil
			},
		)
	})

	rows, err := importer.ReadCSV(strings.NewReader(
		"Matrícula IQ,Nome,Turma\n" +
			"iq2000123,MARIA DA SILVA,INF-2A\n" +
			"IQ3000456,joão dos santos,MEC-1B\n" +
			",Sem Matrícula,INF-2A\n"))
	require.NoError(t, err)

	summary, err := imp.ImportStudents(context.Background(), rows)
	require.NoError(t, err)
	require.Equal(t, int64(2), summary.Imported)
	require.Equal(t, 1, summary.Skipped)
}

func TestImporter_ImportStudents_NoRows(t *testing.T) {
	_, _, imp := newTestImporter(t)

	summary, err := imp.ImportStudents(context.Background(), [][]string{{"Matrícula", "Nome"}})
	require.NoError(t, err)
	require.Zero(t, summary.Imported)
	require.Zero(t, summary.Skipped)
}

func TestImporter_ImportReserves(t *testing.T) {
	ctrl, st, imp := newTestImporter(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StudentRefs(gomock.Any()).Return([]storage.StudentRef{
			{ID: 1, Badge: "IQ3000123"},
		}, nil)
		tx.EXPECT().StoreReserves(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reserves ...domain.Reserve) (int64, error) {
				require.Len(t, reserves, 1)
				require.Equal(t, domain.StudentID(1), reserves[0].StudentID)
				require.Equal(t, "Feijoada", reserves[0].Dish)
				require.False(t, reserves[0].Snack)

				return 1, nil
			},
		)
	})

	summary, err := imp.ImportReserves(context.Background(), [][]string{
		{"Prontuário", "Refeição", "Data"},
		{"IQ3000123", "Feijoada", "2026-08-26"},
		{"IQ3000999", "Feijoada", "2026-08-26"},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), summary.Imported)
	// the unknown badge is skipped during resolution
	require.Equal(t, 1, summary.Skipped)
}
