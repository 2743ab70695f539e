package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/monitoreo/internal/adapters/sqlite"
	"github.com/example/monitoreo/internal/ports/secondary"
)

func TestKVStoreGetAbsentKey(t *testing.T) {
	store := sqlite.NewKVStore(setupTestDB(t))

	value, err := store.Get(context.Background(), secondary.KeyUser)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != nil {
		t.Errorf("absent key returned %q, want nil", value)
	}
}

func TestKVStoreSetGetDelete(t *testing.T) {
	store := sqlite.NewKVStore(setupTestDB(t))
	ctx := context.Background()

	if err := store.Set(ctx, secondary.KeyUser, []byte(`{"username":"admin"}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, err := store.Get(ctx, secondary.KeyUser)
	if err != nil {
		t.Fatal(err)
	}
	if string(value) != `{"username":"admin"}` {
		t.Errorf("Get() = %s", value)
	}

	// Overwrite.
	if err := store.Set(ctx, secondary.KeyUser, []byte(`{"username":"maria"}`)); err != nil {
		t.Fatal(err)
	}
	value, _ = store.Get(ctx, secondary.KeyUser)
	if string(value) != `{"username":"maria"}` {
		t.Errorf("Get() after overwrite = %s", value)
	}

	if err := store.Delete(ctx, secondary.KeyUser); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	value, _ = store.Get(ctx, secondary.KeyUser)
	if value != nil {
		t.Errorf("Get() after delete = %q, want nil", value)
	}

	// Deleting again is not an error.
	if err := store.Delete(ctx, secondary.KeyUser); err != nil {
		t.Errorf("Delete() on absent key: %v", err)
	}
}

func TestKVStoreKeysIndependent(t *testing.T) {
	store := sqlite.NewKVStore(setupTestDB(t))
	ctx := context.Background()

	if err := store.Set(ctx, secondary.KeySession, []byte(`{"state":"in_progress"}`)); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, secondary.KeyLastVisit, []byte(`{"clientId":"v-1"}`)); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, secondary.KeySession); err != nil {
		t.Fatal(err)
	}

	value, _ := store.Get(ctx, secondary.KeyLastVisit)
	if value == nil {
		t.Error("deleting the session key removed the last visit")
	}
}
