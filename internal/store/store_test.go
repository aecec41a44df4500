package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"kaamconnect/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st
}

func TestLoadMissingFile(t *testing.T) {
	st := openTestStore(t)

	customers, err := st.Customers.Load()
	if err != nil {
		t.Fatalf("load: unexpected error: %v", err)
	}
	if len(customers) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(customers))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "customers.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	customers, err := st.Customers.Load()
	if err != nil {
		t.Fatalf("load corrupt: unexpected error: %v", err)
	}
	if len(customers) != 0 {
		t.Fatalf("corrupt file should read as empty, got %d records", len(customers))
	}
}

func TestSaveAndLoadKeepsOrder(t *testing.T) {
	st := openTestStore(t)

	in := []models.Customer{
		{ID: 1, FullName: "First", Phone: "9876543210"},
		{ID: 2, FullName: "Second", Phone: "9876543211"},
		{ID: 3, FullName: "Third", Phone: "9876543212"},
	}
	if err := st.Customers.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := st.Customers.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d records, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i].ID != in[i].ID || out[i].FullName != in[i].FullName {
			t.Fatalf("record %d mismatch: got %+v", i, out[i])
		}
	}
}

func TestUpdateErrorLeavesFileUnchanged(t *testing.T) {
	st := openTestStore(t)

	if err := st.Customers.Save([]models.Customer{{ID: 1, FullName: "Kept"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	boom := errors.New("boom")
	err := st.Customers.Update(func(customers []models.Customer) ([]models.Customer, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error passed through, got %v", err)
	}

	customers, err := st.Customers.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(customers) != 1 || customers[0].FullName != "Kept" {
		t.Fatalf("collection changed after failed update: %+v", customers)
	}
}

func TestUpdateSerializesWriters(t *testing.T) {
	st := openTestStore(t)

	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := st.Labourers.Update(func(labourers []models.Labourer) ([]models.Labourer, error) {
				labourers = append(labourers, models.Labourer{ID: NextID(labourers)})
				return labourers, nil
			})
			if err != nil {
				t.Errorf("update: %v", err)
			}
		}()
	}
	wg.Wait()

	labourers, err := st.Labourers.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(labourers) != writers {
		t.Fatalf("expected %d records after concurrent updates, got %d", writers, len(labourers))
	}
	seen := map[int]bool{}
	for _, l := range labourers {
		if seen[l.ID] {
			t.Fatalf("duplicate id %d allocated", l.ID)
		}
		seen[l.ID] = true
	}
}

func TestNextID(t *testing.T) {
	if got := NextID([]models.Customer{}); got != 1 {
		t.Fatalf("empty collection: expected 1, got %d", got)
	}

	records := []models.Customer{{ID: 1}, {ID: 3}, {ID: 5}}
	if got := NextID(records); got != 6 {
		t.Fatalf("expected max+1 = 6, got %d", got)
	}
}
