/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
	"github.com/suparena/sqlrecord/datastore"
)

// ExecuteStatementAPI is the part of the DynamoDB client the cursor uses.
type ExecuteStatementAPI interface {
	ExecuteStatement(ctx context.Context, params *sdk.ExecuteStatementInput, optFns ...func(*sdk.Options)) (*sdk.ExecuteStatementOutput, error)
}

// ColumnSource reports the ordered columns of a table. Inserts need it
// because DynamoDB items are keyed by attribute name, not position.
type ColumnSource interface {
	Columns(table string) ([]string, bool)
}

// Config holds the settings for NewDynamoDBClient.
type Config struct {
	AccessKey string
	SecretKey string
	Region    string
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string
}

// Cursor implements datastore.Cursor with DynamoDB PartiQL statements.
type Cursor struct {
	datastore.ResultSet

	client         ExecuteStatementAPI
	columns        ColumnSource
	consistentRead bool
	logger         zerolog.Logger
}

// Option configures a Cursor.
type Option func(*Cursor)

// WithConsistentRead requests strongly consistent reads for select statements.
func WithConsistentRead(consistent bool) Option {
	return func(c *Cursor) {
		c.consistentRead = consistent
	}
}

// WithLogger sets the logger used for statement debug logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cursor) {
		c.logger = logger
	}
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are used
// when an access key is given, the default AWS credential chain otherwise.
func NewDynamoDBClient(ctx context.Context, cfg Config) (*sdk.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(awsCfg, func(o *sdk.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// New returns a cursor executing statements through client. columns may be
// nil, in which case inserts of generated statements fail.
func New(client ExecuteStatementAPI, columns ColumnSource, opts ...Option) *Cursor {
	c := &Cursor{
		client:  client,
		columns: columns,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute translates query to PartiQL, runs it and buffers every result page.
func (c *Cursor) Execute(ctx context.Context, query string, args ...any) (datastore.Cursor, error) {
	c.Reset(nil, nil)

	stmt, table, err := c.translate(query)
	if err != nil {
		return nil, err
	}
	params, err := encodeParams(args)
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Str("statement", stmt).Int("args", len(args)).Msg("Executing PartiQL statement")

	input := &sdk.ExecuteStatementInput{
		Statement:  aws.String(stmt),
		Parameters: params,
	}
	if c.consistentRead {
		input.ConsistentRead = aws.Bool(true)
	}

	var items []map[string]types.AttributeValue
	for {
		out, err := c.client.ExecuteStatement(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("ExecuteStatement failed: %w", err)
		}
		items = append(items, out.Items...)
		if out.NextToken == nil || *out.NextToken == "" {
			break
		}
		input.NextToken = out.NextToken
	}

	columns := c.orderColumns(table, items)
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		row := make([]any, len(columns))
		for i, col := range columns {
			av, ok := item[col]
			if !ok {
				continue
			}
			if row[i], err = decodeAttribute(av); err != nil {
				return nil, fmt.Errorf("decode attribute %q: %w", col, err)
			}
		}
		rows = append(rows, row)
	}

	c.Reset(columns, rows)
	return c, nil
}

// orderColumns lists the table's known columns first, then any other
// attribute names found in the items, sorted.
func (c *Cursor) orderColumns(table string, items []map[string]types.AttributeValue) []string {
	var columns []string
	seen := make(map[string]struct{})
	if table != "" && c.columns != nil {
		if known, ok := c.columns.Columns(table); ok {
			for _, col := range known {
				columns = append(columns, col)
				seen[col] = struct{}{}
			}
		}
	}

	var extra []string
	for _, item := range items {
		for name := range item {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(columns, extra...)
}
