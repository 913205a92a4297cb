package repository

import (
	"context"
	"encoding/json"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const ledgerReferenceIndex = "reference-index"

type customerItem struct {
	Name     string `dynamodbav:"name,omitempty"`
	Document string `dynamodbav:"document,omitempty"`
	Email    string `dynamodbav:"email,omitempty"`
	Phone    string `dynamodbav:"phone,omitempty"`
}

type ledgerEntryItem struct {
	ID                 string       `dynamodbav:"id"`
	Reference          string       `dynamodbav:"reference,omitempty"`
	RecordedAt         string       `dynamodbav:"recorded_at"`
	GatewayID          string       `dynamodbav:"gateway_id"`
	GatewayType        string       `dynamodbav:"gateway_type"`
	Description        string       `dynamodbav:"description,omitempty"`
	Customer           customerItem `dynamodbav:"customer"`
	Status             string       `dynamodbav:"status"`
	Amount             string       `dynamodbav:"amount"`
	Method             string       `dynamodbav:"method"`
	AuthorizationCode  string       `dynamodbav:"authorization_code,omitempty"`
	TransactionID      string       `dynamodbav:"transaction_id"`
	ReceiptURL         string       `dynamodbav:"receipt_url,omitempty"`
	QRCodePayload      string       `dynamodbav:"qr_code_payload,omitempty"`
	BankSlipReference  string       `dynamodbav:"bank_slip_reference,omitempty"`
	ProcessingDate     string       `dynamodbav:"processing_date"`
	GatewayResponseRaw string       `dynamodbav:"gateway_response_raw,omitempty"`
	ManualNotes        string       `dynamodbav:"manual_notes,omitempty"`
}

// LedgerDynamoRepository is the append-only transaction ledger.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: reference-index (PK: reference)
type LedgerDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ILedgerRepository = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb dynamoAPI, tableName string) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LedgerDynamoRepository) Append(ctx context.Context, e entities.LedgerEntry) error {
	av, err := attributevalue.MarshalMap(toLedgerEntryItem(e))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrLedgerEntryExists
	}
	return err
}

func (r *LedgerDynamoRepository) GetByID(ctx context.Context, id string) (entities.LedgerEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LedgerEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.LedgerEntry{}, nil
	}
	var it ledgerEntryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LedgerEntry{}, err
	}
	return fromLedgerEntryItem(it), nil
}

func (r *LedgerDynamoRepository) List(ctx context.Context) ([]entities.LedgerEntry, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return unmarshalLedgerEntries(raw)
}

func (r *LedgerDynamoRepository) ListByReference(ctx context.Context, reference string) ([]entities.LedgerEntry, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ledgerReferenceIndex),
		KeyConditionExpression: aws.String("#reference = :ref"),
		ExpressionAttributeNames: map[string]string{
			"#reference": "reference",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: reference},
		},
	})
	var raw []map[string]types.AttributeValue
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		raw = append(raw, out.Items...)
	}
	return unmarshalLedgerEntries(raw)
}

func unmarshalLedgerEntries(raw []map[string]types.AttributeValue) ([]entities.LedgerEntry, error) {
	entries := make([]entities.LedgerEntry, 0, len(raw))
	for _, av := range raw {
		var it ledgerEntryItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromLedgerEntryItem(it))
	}
	return entries, nil
}

func toLedgerEntryItem(e entities.LedgerEntry) ledgerEntryItem {
	resp := e.Response
	return ledgerEntryItem{
		ID:                 e.ID,
		Reference:          e.Reference,
		RecordedAt:         formatTime(e.RecordedAt),
		GatewayID:          e.GatewayID,
		GatewayType:        string(e.GatewayType),
		Description:        e.Description,
		Customer:           customerItem(e.Customer),
		Status:             string(resp.Status),
		Amount:             resp.Amount.String(),
		Method:             string(resp.Method),
		AuthorizationCode:  resp.AuthorizationCode,
		TransactionID:      resp.TransactionID,
		ReceiptURL:         resp.ReceiptURL,
		QRCodePayload:      resp.QRCodePayload,
		BankSlipReference:  resp.BankSlipReference,
		ProcessingDate:     formatTime(resp.ProcessingDate),
		GatewayResponseRaw: string(resp.GatewayResponse),
		ManualNotes:        resp.ManualNotes,
	}
}

func fromLedgerEntryItem(it ledgerEntryItem) entities.LedgerEntry {
	amount, _ := decimal.NewFromString(it.Amount)
	var gatewayResponse json.RawMessage
	if it.GatewayResponseRaw != "" {
		gatewayResponse = json.RawMessage(it.GatewayResponseRaw)
	}
	return entities.LedgerEntry{
		ID:          it.ID,
		GatewayID:   it.GatewayID,
		GatewayType: entities.GatewayType(it.GatewayType),
		Description: it.Description,
		Reference:   it.Reference,
		Customer:    entities.CustomerInfo(it.Customer),
		RecordedAt:  parseTime(it.RecordedAt),
		Response: entities.PaymentResponse{
			ID:                it.ID,
			Status:            entities.PaymentStatus(it.Status),
			Amount:            amount,
			Method:            entities.PaymentMethod(it.Method),
			AuthorizationCode: it.AuthorizationCode,
			TransactionID:     it.TransactionID,
			ReceiptURL:        it.ReceiptURL,
			QRCodePayload:     it.QRCodePayload,
			BankSlipReference: it.BankSlipReference,
			ProcessingDate:    parseTime(it.ProcessingDate),
			GatewayID:         it.GatewayID,
			GatewayResponse:   gatewayResponse,
			ManualNotes:       it.ManualNotes,
		},
	}
}
