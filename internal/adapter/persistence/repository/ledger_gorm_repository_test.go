package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/infrastructure/database"
	"gestao_contratos/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func newGormStore(t *testing.T) *LedgerGormRepository {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), "silent")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db, LedgerModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewLedgerGormRepository(db)
}

func seedContract(t *testing.T, store *LedgerGormRepository) entities.Contract {
	t.Helper()
	now := time.Now().UTC()
	c := entities.Contract{
		ID:         "c-1",
		Number:     "001/2025",
		Suppliers:  []string{"Papelaria Central"},
		Funds:      []string{"Educação", "Saúde"},
		Object:     "Material de expediente",
		TotalValue: decimal.NewFromInt(200),
		StartDate:  now.AddDate(0, -1, 0),
		EndDate:    now.AddDate(1, 0, 0),
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
		Items: []entities.Item{
			{ID: "i-1", ContractID: "c-1", Description: "Papel A4", Unit: "resma", UnitPrice: decimal.NewFromInt(2), Quantity: decimal.NewFromInt(100), Position: 1, CreatedAt: now, UpdatedAt: now},
		},
	}
	if _, err := store.CreateContract(context.Background(), c); err != nil {
		t.Fatalf("create contract: %v", err)
	}
	return c
}

func TestLedgerGormRepository_CreateAndRead(t *testing.T) {
	store := newGormStore(t)
	seedContract(t, store)
	ctx := context.Background()

	c, err := store.GetContract(ctx, "c-1")
	if err != nil || c.Number != "001/2025" || len(c.Funds) != 2 {
		t.Fatalf("unexpected contract %+v err=%v", c, err)
	}
	items, err := store.ListItems(ctx, "c-1")
	if err != nil || len(items) != 1 || !items[0].Quantity.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected items %+v err=%v", items, err)
	}
	missing, err := store.GetContract(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero contract, got %+v err=%v", missing, err)
	}
}

func TestLedgerGormRepository_WithinContract(t *testing.T) {
	ctx := context.Background()

	t.Run("bumps the contract version on write", func(t *testing.T) {
		store := newGormStore(t)
		seedContract(t, store)

		err := store.WithinContract(ctx, "c-1", func(tx interfaces.ILedgerTx) error {
			return tx.UpdateItemQuantity(ctx, "c-1", "i-1", decimal.NewFromInt(110))
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c, _ := store.GetContract(ctx, "c-1")
		if c.Version != 2 {
			t.Fatalf("expected version 2, got %d", c.Version)
		}
		it, _ := store.GetItem(ctx, "c-1", "i-1")
		if !it.Quantity.Equal(decimal.NewFromInt(110)) {
			t.Fatalf("expected 110, got %s", it.Quantity)
		}
	})

	t.Run("error rolls back every write", func(t *testing.T) {
		store := newGormStore(t)
		seedContract(t, store)
		boom := errors.New("boom")

		err := store.WithinContract(ctx, "c-1", func(tx interfaces.ILedgerTx) error {
			if err := tx.InsertAmendment(ctx, entities.Amendment{ID: "a-1", ContractID: "c-1", Type: entities.AmendmentTypeValor, CreatedAt: time.Now()}); err != nil {
				return err
			}
			if err := tx.UpdateItemQuantity(ctx, "c-1", "i-1", decimal.NewFromInt(999)); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		amendments, _ := store.ListAmendments(ctx, "c-1")
		it, _ := store.GetItem(ctx, "c-1", "i-1")
		if len(amendments) != 0 || !it.Quantity.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected rollback, got amendments=%d quantity=%s", len(amendments), it.Quantity)
		}
	})

	t.Run("order sequence restarts each year", func(t *testing.T) {
		store := newGormStore(t)
		seedContract(t, store)

		var got []int
		for _, year := range []int{2025, 2025, 2025, 2026} {
			err := store.WithinContract(ctx, "c-1", func(tx interfaces.ILedgerTx) error {
				seq, err := tx.NextOrderSequence(ctx, year)
				got = append(got, seq)
				return err
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if fmt.Sprint(got) != "[1 2 3 1]" {
			t.Fatalf("unexpected sequences %v", got)
		}
	})

	t.Run("duplicated order number is a conflict", func(t *testing.T) {
		store := newGormStore(t)
		seedContract(t, store)
		number := entities.OrderNumber{Sequence: 1, Year: 2025}

		insert := func(id, requestID string) error {
			return store.WithinContract(ctx, "c-1", func(tx interfaces.ILedgerTx) error {
				return tx.InsertOrder(ctx, entities.Order{ID: id, ContractID: "c-1", RequestID: requestID, Number: number})
			})
		}
		if err := insert("o-1", "r-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := insert("o-2", "r-2"); !errors.Is(err, interfaces.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("decided request cannot be decided again", func(t *testing.T) {
		store := newGormStore(t)
		seedContract(t, store)
		now := time.Now().UTC()
		r := entities.OrderRequest{ID: "r-1", ContractID: "c-1", RequesterID: "u-1", Fund: "Saúde", Justification: "falta", Status: entities.OrderRequestStatusPendente, CreatedAt: now, UpdatedAt: now}

		err := store.WithinContract(ctx, "c-1", func(tx interfaces.ILedgerTx) error {
			return tx.InsertOrderRequest(ctx, r)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		refused := r
		refused.Decide(entities.OrderRequestStatusRecusada, "admin", "sem saldo", now)
		err = store.WithinContract(ctx, "c-1", func(tx interfaces.ILedgerTx) error {
			return tx.UpdateOrderRequestStatus(ctx, refused)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		approved := r
		approved.Decide(entities.OrderRequestStatusAprovada, "admin", "", now)
		err = store.WithinContract(ctx, "c-1", func(tx interfaces.ILedgerTx) error {
			return tx.UpdateOrderRequestStatus(ctx, approved)
		})
		if !errors.Is(err, interfaces.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		got, _ := store.GetOrderRequest(ctx, "r-1")
		if got.Status != entities.OrderRequestStatusRecusada || got.DecisionReason != "sem saldo" {
			t.Fatalf("unexpected request %+v", got)
		}
	})

	t.Run("consumption records diff writes", func(t *testing.T) {
		store := newGormStore(t)
		seedContract(t, store)
		now := time.Now().UTC()
		records := []entities.ConsumptionRecord{
			{ID: "rec-1", OrderID: "o-1", ContractID: "c-1", ItemID: "i-1", Quantity: decimal.NewFromInt(10), CreatedAt: now, UpdatedAt: now},
			{ID: "rec-2", OrderID: "o-1", ContractID: "c-1", ItemID: "i-1", Quantity: decimal.NewFromInt(5), CreatedAt: now, UpdatedAt: now},
		}
		err := store.WithinContract(ctx, "c-1", func(tx interfaces.ILedgerTx) error {
			return tx.InsertConsumptionRecords(ctx, records)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err = store.WithinContract(ctx, "c-1", func(tx interfaces.ILedgerTx) error {
			if err := tx.DeleteConsumptionRecords(ctx, "o-1", []string{"rec-2"}); err != nil {
				return err
			}
			updated := records[0]
			updated.Quantity = decimal.NewFromInt(4)
			return tx.UpdateConsumptionRecord(ctx, updated)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := store.ListConsumptionRecordsByItem(ctx, "i-1")
		if err != nil || len(got) != 1 || got[0].ID != "rec-1" || !got[0].Quantity.Equal(decimal.NewFromInt(4)) {
			t.Fatalf("unexpected records %+v err=%v", got, err)
		}
	})
}
