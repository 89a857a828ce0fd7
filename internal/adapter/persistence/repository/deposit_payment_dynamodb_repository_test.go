package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio_api/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func paymentItem(t *testing.T, id string, at time.Time) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toDepositPaymentItem(entities.DepositPayment{
		ID:           id,
		OnboardingID: "onb-1",
		Amount:       2860,
		Date:         at,
		Status:       entities.PaymentStatusApproved,
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestDepositPaymentDynamoRepository_Create(t *testing.T) {
	f := &fakeDynamo{}
	repo := NewDepositPaymentDynamoRepository(f, "deposit_payments")
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	if _, err := repo.Create(context.Background(), entities.DepositPayment{ID: "991", OnboardingID: "onb-1", Amount: 2860, Date: at}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aws.ToString(f.put.ConditionExpression) != "attribute_not_exists(#id)" {
		t.Fatalf("create must not overwrite: %v", aws.ToString(f.put.ConditionExpression))
	}
	date := f.put.Item["date"].(*types.AttributeValueMemberS).Value
	if date != "2025-03-01T10:00:00.000000000Z" {
		t.Fatalf("date must be written fixed-width, got %q", date)
	}
}

func TestDepositPaymentDynamoRepository_SortableDates(t *testing.T) {
	whole := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	later := whole.Add(500 * time.Millisecond)
	if !(formatSortableTime(whole) < formatSortableTime(later)) {
		t.Fatalf("%q must sort before %q", formatSortableTime(whole), formatSortableTime(later))
	}
	if !parseTime(formatSortableTime(later)).Equal(later) {
		t.Fatalf("round trip lost precision")
	}
}

func TestDepositPaymentDynamoRepository_GetLatestByOnboardingID(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("reads newest first with limit one", func(t *testing.T) {
		f := &fakeDynamo{pages: []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{paymentItem(t, "b", at.Add(time.Hour))}}}}
		repo := NewDepositPaymentDynamoRepository(f, "deposit_payments")

		p, err := repo.GetLatestByOnboardingID(context.Background(), "onb-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "b" || p.Amount != 2860 || !p.Date.Equal(at.Add(time.Hour)) {
			t.Fatalf("unexpected payment %+v", p)
		}
		q := f.queries[0]
		if aws.ToString(q.IndexName) != paymentsOnboardingDateIndex || aws.ToBool(q.ScanIndexForward) || aws.ToInt32(q.Limit) != 1 {
			t.Fatalf("unexpected query %+v", q)
		}
	})

	t.Run("no attempts", func(t *testing.T) {
		repo := NewDepositPaymentDynamoRepository(&fakeDynamo{}, "deposit_payments")
		p, err := repo.GetLatestByOnboardingID(context.Background(), "onb-1")
		if err != nil || p.ID != "" {
			t.Fatalf("expected empty payment, got %+v err=%v", p, err)
		}
	})

	t.Run("query error", func(t *testing.T) {
		repo := NewDepositPaymentDynamoRepository(&fakeDynamo{err: errors.New("throttled")}, "deposit_payments")
		if _, err := repo.GetLatestByOnboardingID(context.Background(), "onb-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestDepositPaymentDynamoRepository_ListByOnboardingID_FollowsPages(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	cursor := map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "b"}}
	f := &fakeDynamo{pages: []*dynamodb.QueryOutput{
		{Items: []map[string]types.AttributeValue{paymentItem(t, "c", at.Add(2 * time.Hour)), paymentItem(t, "b", at.Add(time.Hour))}, LastEvaluatedKey: cursor},
		{Items: []map[string]types.AttributeValue{paymentItem(t, "a", at)}},
	}}
	repo := NewDepositPaymentDynamoRepository(f, "deposit_payments")

	list, err := repo.ListByOnboardingID(context.Background(), "onb-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 || list[0].ID != "c" || list[2].ID != "a" {
		t.Fatalf("unexpected list %+v", list)
	}
	if len(f.queries) != 2 || f.queries[1].ExclusiveStartKey["id"] == nil {
		t.Fatalf("second page must start after the cursor: %+v", f.queries)
	}
}
