package repository

import (
	"context"
	"errors"
	"time"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrGatewayNotFound = errors.New("payment gateway not found")

type bankTransferItem struct {
	BankName string `dynamodbav:"bank_name,omitempty"`
	Agency   string `dynamodbav:"agency,omitempty"`
	Account  string `dynamodbav:"account,omitempty"`
	Holder   string `dynamodbav:"holder,omitempty"`
}

type localConfigItem struct {
	CompanyName     string           `dynamodbav:"company_name,omitempty"`
	CompanyDocument string           `dynamodbav:"company_document,omitempty"`
	City            string           `dynamodbav:"city,omitempty"`
	PixKey          string           `dynamodbav:"pix_key,omitempty"`
	SlipBankCode    string           `dynamodbav:"slip_bank_code,omitempty"`
	BankTransfer    bankTransferItem `dynamodbav:"bank_transfer"`
}

type paymentGatewayItem struct {
	ID               string          `dynamodbav:"id"`
	Name             string          `dynamodbav:"name"`
	Enabled          bool            `dynamodbav:"enabled"`
	Type             string          `dynamodbav:"type"`
	SupportedMethods []string        `dynamodbav:"supported_methods"`
	Position         int             `dynamodbav:"position"`
	TestMode         bool            `dynamodbav:"test_mode"`
	Provider         string          `dynamodbav:"provider,omitempty"`
	APIKey           string          `dynamodbav:"api_key,omitempty"`
	MerchantID       string          `dynamodbav:"merchant_id,omitempty"`
	BankConnectionID string          `dynamodbav:"bank_connection_id,omitempty"`
	LocalConfig      localConfigItem `dynamodbav:"local_config"`
	UpdatedAt        string          `dynamodbav:"updated_at"`
}

// PaymentGatewayDynamoRepository persists the gateway configuration.
//
// Table requirements:
//   - PK: id (string)
type PaymentGatewayDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IPaymentGatewayRepository = (*PaymentGatewayDynamoRepository)(nil)

func NewPaymentGatewayDynamoRepository(ddb dynamoAPI, tableName string) *PaymentGatewayDynamoRepository {
	return &PaymentGatewayDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *PaymentGatewayDynamoRepository) List(ctx context.Context) ([]entities.PaymentGateway, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	gateways := make([]entities.PaymentGateway, 0, len(raw))
	for _, av := range raw {
		var it paymentGatewayItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		gateways = append(gateways, fromPaymentGatewayItem(it))
	}
	entities.SortGateways(gateways)
	return gateways, nil
}

func (r *PaymentGatewayDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentGateway, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentGateway{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentGateway{}, nil
	}
	var it paymentGatewayItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentGateway{}, err
	}
	return fromPaymentGatewayItem(it), nil
}

func (r *PaymentGatewayDynamoRepository) Save(ctx context.Context, g entities.PaymentGateway) error {
	it := toPaymentGatewayItem(g)
	it.UpdatedAt = formatTime(r.now())
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PaymentGatewayDynamoRepository) SetEnabled(ctx context.Context, id string, enabled bool) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #enabled = :enabled, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#enabled":    "enabled",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":enabled":    &types.AttributeValueMemberBOOL{Value: enabled},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
	})
	if isConditionalCheckFailed(err) {
		return ErrGatewayNotFound
	}
	return err
}

func toPaymentGatewayItem(g entities.PaymentGateway) paymentGatewayItem {
	methods := make([]string, 0, len(g.SupportedMethods))
	for _, m := range g.SupportedMethods {
		methods = append(methods, string(m))
	}
	lc := g.LocalConfig
	return paymentGatewayItem{
		ID:               g.ID,
		Name:             g.Name,
		Enabled:          g.Enabled,
		Type:             string(g.Type),
		SupportedMethods: methods,
		Position:         g.Position,
		TestMode:         g.TestMode,
		Provider:         string(g.Provider),
		APIKey:           g.APIKey,
		MerchantID:       g.MerchantID,
		BankConnectionID: g.BankConnectionID,
		LocalConfig: localConfigItem{
			CompanyName:     lc.CompanyName,
			CompanyDocument: lc.CompanyDocument,
			City:            lc.City,
			PixKey:          lc.PixKey,
			SlipBankCode:    lc.SlipBankCode,
			BankTransfer:    bankTransferItem(lc.BankTransfer),
		},
	}
}

func fromPaymentGatewayItem(it paymentGatewayItem) entities.PaymentGateway {
	methods := make([]entities.PaymentMethod, 0, len(it.SupportedMethods))
	for _, m := range it.SupportedMethods {
		methods = append(methods, entities.PaymentMethod(m))
	}
	lc := it.LocalConfig
	return entities.PaymentGateway{
		ID:               it.ID,
		Name:             it.Name,
		Enabled:          it.Enabled,
		Type:             entities.GatewayType(it.Type),
		SupportedMethods: methods,
		Position:         it.Position,
		TestMode:         it.TestMode,
		Provider:         entities.ExternalProvider(it.Provider),
		APIKey:           it.APIKey,
		MerchantID:       it.MerchantID,
		BankConnectionID: it.BankConnectionID,
		LocalConfig: entities.LocalConfig{
			CompanyName:     lc.CompanyName,
			CompanyDocument: lc.CompanyDocument,
			City:            lc.City,
			PixKey:          lc.PixKey,
			SlipBankCode:    lc.SlipBankCode,
			BankTransfer:    entities.BankTransferInfo(lc.BankTransfer),
		},
	}
}
