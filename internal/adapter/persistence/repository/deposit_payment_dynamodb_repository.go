package repository

import (
	"context"
	"fmt"

	"studio_api/internal/domain/entities"
	"studio_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsOnboardingDateIndex = "onboarding_id-date-index"

type depositPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	OnboardingID       string                 `dynamodbav:"onboarding_id"`
	Amount             int                    `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// DepositPaymentDynamoRepository stores deposit attempts, one item per
// provider payment.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: onboarding_id-date-index (PK: onboarding_id, SK: date)
//
// date is written fixed-width so the sort key orders attempts in time.
type DepositPaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IDepositPaymentRepository = (*DepositPaymentDynamoRepository)(nil)

func NewDepositPaymentDynamoRepository(ddb dynamoAPI, tableName string) *DepositPaymentDynamoRepository {
	return &DepositPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

// Create rejects a second item with the same provider payment id.
func (r *DepositPaymentDynamoRepository) Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
	av, err := attributevalue.MarshalMap(toDepositPaymentItem(p))
	if err != nil {
		return entities.DepositPayment{}, fmt.Errorf("marshal deposit payment: %w", err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.DepositPayment{}, err
	}
	return p, nil
}

// GetLatestByOnboardingID reads the newest attempt from the date sort key.
// An onboarding without attempts yields an empty payment.
func (r *DepositPaymentDynamoRepository) GetLatestByOnboardingID(ctx context.Context, onboardingID string) (entities.DepositPayment, error) {
	out, err := r.ddb.Query(ctx, r.byOnboardingQuery(onboardingID, nil, aws.Int32(1)))
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if len(out.Items) == 0 {
		return entities.DepositPayment{}, nil
	}
	var it depositPaymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.DepositPayment{}, fmt.Errorf("unmarshal deposit payment: %w", err)
	}
	return fromDepositPaymentItem(it), nil
}

// ListByOnboardingID returns every attempt, newest first, following query pages.
func (r *DepositPaymentDynamoRepository) ListByOnboardingID(ctx context.Context, onboardingID string) ([]entities.DepositPayment, error) {
	var (
		items []entities.DepositPayment
		start map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, r.byOnboardingQuery(onboardingID, start, nil))
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it depositPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, fmt.Errorf("unmarshal deposit payment: %w", err)
			}
			items = append(items, fromDepositPaymentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = out.LastEvaluatedKey
	}
}

func (r *DepositPaymentDynamoRepository) byOnboardingQuery(onboardingID string, start map[string]types.AttributeValue, limit *int32) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOnboardingDateIndex),
		KeyConditionExpression: aws.String("onboarding_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: onboardingID},
		},
		ScanIndexForward:  aws.Bool(false),
		ExclusiveStartKey: start,
		Limit:             limit,
	}
}

func toDepositPaymentItem(p entities.DepositPayment) depositPaymentItem {
	return depositPaymentItem{
		ID:                 p.ID,
		OnboardingID:       p.OnboardingID,
		Amount:             p.Amount,
		Date:               formatSortableTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromDepositPaymentItem(it depositPaymentItem) entities.DepositPayment {
	return entities.DepositPayment{
		ID:                 it.ID,
		OnboardingID:       it.OnboardingID,
		Amount:             it.Amount,
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
