package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"studio_api/internal/domain/entities"
	"studio_api/internal/domain/pricing"
	"studio_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type correctionItem struct {
	ID                  string `dynamodbav:"id"`
	CorrectedAt         string `dynamodbav:"corrected_at"`
	Reason              string `dynamodbav:"reason"`
	PreviousTotal       int    `dynamodbav:"previous_total"`
	NewTotal            int    `dynamodbav:"new_total"`
	PreviousContractURL string `dynamodbav:"previous_contract_url,omitempty"`
	NewContractURL      string `dynamodbav:"new_contract_url,omitempty"`
}

type onboardingItem struct {
	ID      string `dynamodbav:"id"`
	DraftID string `dynamodbav:"draft_id"`
	Status  string `dynamodbav:"status"`

	ClientJSON  string `dynamodbav:"client_json"`
	ProjectJSON string `dynamodbav:"project_json"`
	PricingJSON string `dynamodbav:"pricing_json"`
	TotalPrice  int    `dynamodbav:"total_price"`

	ContractKey    string `dynamodbav:"contract_key"`
	ContractPDFURL string `dynamodbav:"contract_pdf_url"`
	SignatureKey   string `dynamodbav:"signature_key"`
	SignedPlace    string `dynamodbav:"signed_place,omitempty"`
	SignedAt       string `dynamodbav:"signed_at"`

	AdjustmentJSON        string           `dynamodbav:"adjustment_json,omitempty"`
	RegenerateRequested   bool             `dynamodbav:"regenerate_requested"`
	RegenerationStartedAt string           `dynamodbav:"regeneration_started_at,omitempty"`
	Corrections           []correctionItem `dynamodbav:"corrections"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OnboardingDynamoRepository persists signed onboardings in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every update increments version. Regeneration writes are conditional on the
// version read by the caller, so two webhook deliveries cannot both commit.

type OnboardingDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IOnboardingRepository = (*OnboardingDynamoRepository)(nil)

func NewOnboardingDynamoRepository(ddb dynamoAPI, tableName string) *OnboardingDynamoRepository {
	return &OnboardingDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *OnboardingDynamoRepository) Create(ctx context.Context, o entities.Onboarding) (entities.Onboarding, error) {
	if o.Version == 0 {
		o.Version = 1
	}
	if o.Corrections == nil {
		o.Corrections = []pricing.Correction{}
	}
	it, err := toOnboardingItem(o)
	if err != nil {
		return entities.Onboarding{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Onboarding{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Onboarding{}, err
	}
	return o, nil
}

func (r *OnboardingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Onboarding, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Onboarding{}, err
	}
	if len(out.Item) == 0 {
		return entities.Onboarding{}, nil
	}

	var it onboardingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Onboarding{}, err
	}
	return fromOnboardingItem(it)
}

func (r *OnboardingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OnboardingStatus) (entities.Onboarding, error) {
	o, err := r.update(ctx, id, nil, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
		return expr, vals, map[string]string{"#status": "status"}
	})
	if errors.Is(err, interfaces.ErrVersionConflict) {
		return entities.Onboarding{}, nil
	}
	return o, err
}

func (r *OnboardingDynamoRepository) RequestRegeneration(ctx context.Context, id string, adj pricing.Adjustment) (entities.Onboarding, error) {
	raw, err := json.Marshal(adj)
	if err != nil {
		return entities.Onboarding{}, err
	}
	o, err := r.update(ctx, id, nil, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #adjustment = :adjustment, #regen = :true"
		vals := map[string]types.AttributeValue{
			":adjustment": &types.AttributeValueMemberS{Value: string(raw)},
			":true":       &types.AttributeValueMemberBOOL{Value: true},
		}
		names := map[string]string{
			"#adjustment": "adjustment_json",
			"#regen":      "regenerate_requested",
		}
		return expr, vals, names
	})
	if errors.Is(err, interfaces.ErrVersionConflict) {
		return entities.Onboarding{}, nil
	}
	return o, err
}

func (r *OnboardingDynamoRepository) ClaimRegeneration(ctx context.Context, id string, expectedVersion int64, now time.Time) (entities.Onboarding, error) {
	return r.update(ctx, id, &expectedVersion, func(string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #started = :started"
		vals := map[string]types.AttributeValue{
			":started": &types.AttributeValueMemberS{Value: formatTime(now)},
		}
		return expr, vals, map[string]string{"#started": "regeneration_started_at"}
	})
}

func (r *OnboardingDynamoRepository) ReleaseRegeneration(ctx context.Context, id string, expectedVersion int64) error {
	_, err := r.update(ctx, id, &expectedVersion, func(string) (string, map[string]types.AttributeValue, map[string]string) {
		return "REMOVE #started", nil, map[string]string{"#started": "regeneration_started_at"}
	})
	return err
}

// CommitRevision writes new pricing, the new contract reference and the
// correction entry in a single conditional update and clears the claim.
func (r *OnboardingDynamoRepository) CommitRevision(ctx context.Context, id string, expectedVersion int64, rev entities.ContractRevision, now time.Time) (entities.Onboarding, error) {
	rawPricing, err := json.Marshal(rev.Pricing)
	if err != nil {
		return entities.Onboarding{}, err
	}
	corr, err := attributevalue.Marshal(toCorrectionItem(rev.Correction))
	if err != nil {
		return entities.Onboarding{}, err
	}

	return r.update(ctx, id, &expectedVersion, func(string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #pricing = :pricing, #total = :total, #contract_key = :contract_key, #contract_url = :contract_url, " +
			"#corrections = list_append(if_not_exists(#corrections, :empty), :correction), #regen = :false, #updated_at = :corrected_at " +
			"REMOVE #started"
		vals := map[string]types.AttributeValue{
			":pricing":      &types.AttributeValueMemberS{Value: string(rawPricing)},
			":total":        &types.AttributeValueMemberN{Value: strconv.Itoa(rev.Pricing.TotalPrice)},
			":contract_key": &types.AttributeValueMemberS{Value: rev.ContractKey},
			":contract_url": &types.AttributeValueMemberS{Value: rev.ContractPDFURL},
			":empty":        &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":correction":   &types.AttributeValueMemberL{Value: []types.AttributeValue{corr}},
			":false":        &types.AttributeValueMemberBOOL{Value: false},
			":corrected_at": &types.AttributeValueMemberS{Value: formatTime(now)},
		}
		names := map[string]string{
			"#pricing":      "pricing_json",
			"#total":        "total_price",
			"#contract_key": "contract_key",
			"#contract_url": "contract_pdf_url",
			"#corrections":  "corrections",
			"#regen":        "regenerate_requested",
			"#started":      "regeneration_started_at",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

// update applies build's expression plus the version bump. With
// expectedVersion set the write is conditional on it; a failed condition
// is reported as interfaces.ErrVersionConflict.
func (r *OnboardingDynamoRepository) update(
	ctx context.Context,
	id string,
	expectedVersion *int64,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Onboarding, error) {
	now := formatTime(r.now())
	updateExpr, values, names := build(now)

	set := "#version = #version + :one"
	if _, ok := names["#updated_at"]; !ok {
		set += ", #updated_at = :updated_at"
	}
	updateExpr = addToSet(updateExpr, set)

	vals := map[string]types.AttributeValue{
		":one":        &types.AttributeValueMemberN{Value: "1"},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	for k, v := range values {
		vals[k] = v
	}
	if _, ok := names["#updated_at"]; ok {
		delete(vals, ":updated_at")
	}

	cond := "attribute_exists(#id)"
	if expectedVersion != nil {
		cond += " AND #version = :expected"
		vals[":expected"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(*expectedVersion, 10)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames: mergeNames(names, map[string]string{
			"#id":         "id",
			"#version":    "version",
			"#updated_at": "updated_at",
		}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Onboarding{}, interfaces.ErrVersionConflict
		}
		return entities.Onboarding{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Onboarding{}, nil
	}
	var it onboardingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Onboarding{}, err
	}
	return fromOnboardingItem(it)
}

// addToSet merges extra assignments into the SET clause of expr.
func addToSet(expr, extra string) string {
	rest, ok := strings.CutPrefix(expr, "SET ")
	if !ok {
		return "SET " + extra + " " + expr
	}
	if i := strings.Index(rest, " REMOVE "); i >= 0 {
		return "SET " + rest[:i] + ", " + extra + rest[i:]
	}
	return "SET " + rest + ", " + extra
}

func toOnboardingItem(o entities.Onboarding) (onboardingItem, error) {
	client, err := json.Marshal(o.Client)
	if err != nil {
		return onboardingItem{}, err
	}
	project, err := json.Marshal(o.Project)
	if err != nil {
		return onboardingItem{}, err
	}
	p, err := json.Marshal(o.Pricing)
	if err != nil {
		return onboardingItem{}, err
	}
	var adj string
	if o.Adjustment != nil {
		raw, err := json.Marshal(o.Adjustment)
		if err != nil {
			return onboardingItem{}, err
		}
		adj = string(raw)
	}
	var started string
	if o.RegenerationStartedAt != nil {
		started = formatTime(*o.RegenerationStartedAt)
	}
	corrections := make([]correctionItem, 0, len(o.Corrections))
	for _, c := range o.Corrections {
		corrections = append(corrections, toCorrectionItem(c))
	}

	return onboardingItem{
		ID:                    o.ID,
		DraftID:               o.DraftID,
		Status:                string(o.Status),
		ClientJSON:            string(client),
		ProjectJSON:           string(project),
		PricingJSON:           string(p),
		TotalPrice:            o.Pricing.TotalPrice,
		ContractKey:           o.ContractKey,
		ContractPDFURL:        o.ContractPDFURL,
		SignatureKey:          o.SignatureKey,
		SignedPlace:           o.SignedPlace,
		SignedAt:              formatTime(o.SignedAt),
		AdjustmentJSON:        adj,
		RegenerateRequested:   o.RegenerateRequested,
		RegenerationStartedAt: started,
		Corrections:           corrections,
		Version:               o.Version,
		CreatedAt:             formatTime(o.CreatedAt),
		UpdatedAt:             formatTime(o.UpdatedAt),
	}, nil
}

func fromOnboardingItem(it onboardingItem) (entities.Onboarding, error) {
	o := entities.Onboarding{
		ID:                  it.ID,
		DraftID:             it.DraftID,
		Status:              entities.OnboardingStatus(it.Status),
		ContractKey:         it.ContractKey,
		ContractPDFURL:      it.ContractPDFURL,
		SignatureKey:        it.SignatureKey,
		SignedPlace:         it.SignedPlace,
		SignedAt:            parseTime(it.SignedAt),
		RegenerateRequested: it.RegenerateRequested,
		Corrections:         make([]pricing.Correction, 0, len(it.Corrections)),
		Version:             it.Version,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
	if err := unmarshalIfSet(it.ClientJSON, &o.Client); err != nil {
		return entities.Onboarding{}, err
	}
	if err := unmarshalIfSet(it.ProjectJSON, &o.Project); err != nil {
		return entities.Onboarding{}, err
	}
	if err := unmarshalIfSet(it.PricingJSON, &o.Pricing); err != nil {
		return entities.Onboarding{}, err
	}
	if it.AdjustmentJSON != "" {
		var adj pricing.Adjustment
		if err := json.Unmarshal([]byte(it.AdjustmentJSON), &adj); err != nil {
			return entities.Onboarding{}, err
		}
		o.Adjustment = &adj
	}
	if it.RegenerationStartedAt != "" {
		t := parseTime(it.RegenerationStartedAt)
		o.RegenerationStartedAt = &t
	}
	for _, c := range it.Corrections {
		o.Corrections = append(o.Corrections, fromCorrectionItem(c))
	}
	return o, nil
}

func unmarshalIfSet(raw string, v any) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), v)
}

func toCorrectionItem(c pricing.Correction) correctionItem {
	return correctionItem{
		ID:                  c.ID,
		CorrectedAt:         formatTime(c.CorrectedAt),
		Reason:              c.Reason,
		PreviousTotal:       c.PreviousTotal,
		NewTotal:            c.NewTotal,
		PreviousContractURL: c.PreviousContractURL,
		NewContractURL:      c.NewContractURL,
	}
}

func fromCorrectionItem(it correctionItem) pricing.Correction {
	return pricing.Correction{
		ID:                  it.ID,
		CorrectedAt:         parseTime(it.CorrectedAt),
		Reason:              it.Reason,
		PreviousTotal:       it.PreviousTotal,
		NewTotal:            it.NewTotal,
		PreviousContractURL: it.PreviousContractURL,
		NewContractURL:      it.NewContractURL,
	}
}
