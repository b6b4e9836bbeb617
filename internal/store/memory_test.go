package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/matt-dz/cookingpuppy/internal/season"
)

func TestMemoryCreate(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, err := m.Create(ctx, soup())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second, err := m.Create(ctx, soup())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", first.ID, second.ID)
	}

	// Mutating the returned value must not reach the stored copy.
	first.Ingredients[0].Value = 0
	all, err := m.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if all[0].Ingredients[0].Value != 400 {
		t.Error("store shares ingredient memory with callers")
	}
}

func TestMemoryCreateCopiesInput(t *testing.T) {
	m := NewMemory()
	in := soup()
	if _, err := m.Create(context.Background(), in); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	in.Ingredients[0].Name = "Navet"

	all, _ := m.ListAll(context.Background())
	if all[0].Ingredients[0].Name != "Carotte" {
		t.Error("store shares ingredient memory with the input")
	}
}

func TestMemoryListBySeason(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	for _, s := range []season.Season{season.Winter, season.Summer, season.All, season.Winter} {
		in := soup()
		in.Season = s
		if _, err := m.Create(ctx, in); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	tests := []struct {
		season  season.Season
		wantIDs []int64
	}{
		{season: season.Winter, wantIDs: []int64{1, 3, 4}},
		{season: season.Summer, wantIDs: []int64{2, 3}},
		{season: season.Spring, wantIDs: []int64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.season.String(), func(t *testing.T) {
			got, err := m.ListBySeason(ctx, tt.season)
			if err != nil {
				t.Fatalf("ListBySeason() error = %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d recipes, want %d", len(got), len(tt.wantIDs))
			}
			for i, r := range got {
				if r.ID != tt.wantIDs[i] {
					t.Errorf("recipe %d id = %d, want %d", i, r.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestMemoryCancelledContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.Create(ctx, soup()); !errors.Is(err, ErrPersistence) {
		t.Errorf("Create() expected ErrPersistence, got %v", err)
	}
	if _, err := m.ListAll(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("ListAll() expected context.Canceled, got %v", err)
	}
}

func TestMemoryConcurrentCreate(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	const writers = 50
	var wg sync.WaitGroup
	ids := make(chan int64, writers)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := m.Create(ctx, soup())
			if err != nil {
				t.Errorf("Create() error = %v", err)
				return
			}
			ids <- r.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d assigned twice", id)
		}
		seen[id] = true
	}

	all, _ := m.ListAll(ctx)
	if len(all) != writers {
		t.Errorf("stored %d recipes, want %d", len(all), writers)
	}
}

