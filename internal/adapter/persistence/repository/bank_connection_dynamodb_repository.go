package repository

import (
	"context"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type bankAccountInfoItem struct {
	BankName      string   `dynamodbav:"bank_name,omitempty"`
	AccountType   string   `dynamodbav:"account_type,omitempty"`
	Agency        string   `dynamodbav:"agency,omitempty"`
	AccountNumber string   `dynamodbav:"account_number,omitempty"`
	PixKeys       []string `dynamodbav:"pix_keys,omitempty"`
}

type bankConnectionItem struct {
	ID           string              `dynamodbav:"id"`
	Provider     string              `dynamodbav:"provider"`
	Name         string              `dynamodbav:"name"`
	Connected    bool                `dynamodbav:"connected"`
	AccessToken  string              `dynamodbav:"access_token,omitempty"`
	RefreshToken string              `dynamodbav:"refresh_token,omitempty"`
	ExpiresAt    string              `dynamodbav:"expires_at"`
	AccountInfo  bankAccountInfoItem `dynamodbav:"account_info"`
	CreatedAt    string              `dynamodbav:"created_at"`
	UpdatedAt    string              `dynamodbav:"updated_at"`
}

// BankConnectionDynamoRepository persists BankConnection entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type BankConnectionDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IBankConnectionRepository = (*BankConnectionDynamoRepository)(nil)

func NewBankConnectionDynamoRepository(ddb dynamoAPI, tableName string) *BankConnectionDynamoRepository {
	return &BankConnectionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BankConnectionDynamoRepository) GetByID(ctx context.Context, id string) (entities.BankConnection, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BankConnection{}, err
	}
	if len(out.Item) == 0 {
		return entities.BankConnection{}, nil
	}
	var it bankConnectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BankConnection{}, err
	}
	return fromBankConnectionItem(it), nil
}

func (r *BankConnectionDynamoRepository) List(ctx context.Context) ([]entities.BankConnection, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	conns := make([]entities.BankConnection, 0, len(raw))
	for _, av := range raw {
		var it bankConnectionItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		conns = append(conns, fromBankConnectionItem(it))
	}
	return conns, nil
}

func (r *BankConnectionDynamoRepository) Save(ctx context.Context, c entities.BankConnection) error {
	av, err := attributevalue.MarshalMap(toBankConnectionItem(c))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *BankConnectionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func toBankConnectionItem(c entities.BankConnection) bankConnectionItem {
	return bankConnectionItem{
		ID:           c.ID,
		Provider:     string(c.Provider),
		Name:         c.Name,
		Connected:    c.Connected,
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		ExpiresAt:    formatTime(c.ExpiresAt),
		AccountInfo:  bankAccountInfoItem(c.AccountInfo),
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}

func fromBankConnectionItem(it bankConnectionItem) entities.BankConnection {
	return entities.BankConnection{
		ID:           it.ID,
		Provider:     entities.BankProvider(it.Provider),
		Name:         it.Name,
		Connected:    it.Connected,
		AccessToken:  it.AccessToken,
		RefreshToken: it.RefreshToken,
		ExpiresAt:    parseTime(it.ExpiresAt),
		AccountInfo:  entities.BankAccountInfo(it.AccountInfo),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
