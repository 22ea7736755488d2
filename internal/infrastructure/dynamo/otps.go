package dynamo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
)

// OTPRepo stores one-time codes. Consumption uses a conditional update on
// the verified flag so two concurrent verification attempts against the
// same record resolve to exactly one winner; expires_at doubles as the
// table's native TTL attribute.
type OTPRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewOTPRepo(client *dynamodb.Client, tableName string) *OTPRepo {
	return &OTPRepo{client: client, tableName: tableName}
}

func (r *OTPRepo) Create(ctx context.Context, o *domain.OTP) error {
	item, err := attributevalue.MarshalMap(o)
	if err != nil {
		return fmt.Errorf("marshal otp: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// Consume queries the phone's outstanding records and attempts a
// compare-and-set on each candidate until one succeeds. Losing a race on
// one record falls through to the next candidate, so duplicate codes keep
// the "exactly one match succeeds" property.
func (r *OTPRepo) Consume(ctx context.Context, phone, code string, now time.Time) (bool, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("phone-index"),
		KeyConditionExpression: aws.String("phone = :p"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberS{Value: phone},
		},
	})
	if err != nil {
		return false, err
	}
	var candidates []domain.OTP
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &candidates); err != nil {
		return false, err
	}
	for i := range candidates {
		o := &candidates[i]
		if o.Code != code || !o.Consumable(now) {
			continue
		}
		won, err := r.markVerified(ctx, o.OtpID, now)
		if err != nil {
			return false, err
		}
		if won {
			return true, nil
		}
	}
	return false, nil
}

func (r *OTPRepo) markVerified(ctx context.Context, otpID string, now time.Time) (bool, error) {
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              strKey("otp_id", otpID),
		UpdateExpression: aws.String("SET #v = :t"),
		// Re-checked under the conditional write: another request may have
		// consumed the record between the query and this update.
		ConditionExpression: aws.String("#v = :f AND #e > :now"),
		ExpressionAttributeNames: map[string]string{
			"#v": fieldVerified,
			"#e": fieldExpiresAt,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t":   &types.AttributeValueMemberBOOL{Value: true},
			":f":   &types.AttributeValueMemberBOOL{Value: false},
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		},
	})
	if err != nil {
		var ccfe *types.ConditionalCheckFailedException
		if errors.As(err, &ccfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
