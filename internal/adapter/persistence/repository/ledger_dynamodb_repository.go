package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultLedgerTableName = "contract_ledger"

	// maxTransactItems is the DynamoDB limit of actions in one TransactWriteItems call.
	maxTransactItems = 100
)

// ErrTransactionTooLarge means a ledger transaction needs more writes than DynamoDB
// accepts atomically. Nothing was written.
var ErrTransactionTooLarge = errors.New("ledger transaction exceeds the dynamodb transaction limit")

// DynamoDBAPI is the part of *dynamodb.Client used by the ledger.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// LedgerDynamoRepository persists the ledger in one DynamoDB table.
//
// Table requirements:
//   - PK: pk (string), SK: sk (string)
//
// WithinContract buffers the writes of fn and commits them with TransactWriteItems,
// together with a compare-and-swap of the contract version. A concurrent writer of the
// same contract makes the condition fail and the transaction surfaces
// interfaces.ErrConflict. The yearly order counter is guarded the same way.
type LedgerDynamoRepository struct {
	dynamoLedgerReader
}

var _ interfaces.ILedgerStore = (*LedgerDynamoRepository)(nil)

// NewLedgerDynamoRepository uses LEDGER_TABLE when tableName is empty.
func NewLedgerDynamoRepository(ddb DynamoDBAPI, tableName string) *LedgerDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("LEDGER_TABLE", defaultLedgerTableName)
	}
	return &LedgerDynamoRepository{dynamoLedgerReader{ddb: ddb, tableName: tableName}}
}

// CreateContract writes the items first and the contract row last, so a contract is
// only visible once all of its items are stored. Items that do not fit one
// TransactWriteItems call go in several; when a later call fails, the rows already
// written are deleted so the same contract can be created again.
func (r *LedgerDynamoRepository) CreateContract(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	var writes []types.TransactWriteItem
	for _, it := range c.Items {
		put, err := r.put(toItemRow(it), true)
		if err != nil {
			return entities.Contract{}, err
		}
		ref, err := r.put(refRow{PK: itemRefPK(it.ID), SK: skRef, ContractID: c.ID, TargetID: it.ID}, true)
		if err != nil {
			return entities.Contract{}, err
		}
		writes = append(writes, put, ref)
	}
	meta, err := r.put(toContractRow(c), true)
	if err != nil {
		return entities.Contract{}, err
	}

	var written []types.TransactWriteItem
	for _, chunk := range chunkWrites(writes) {
		if err := r.transact(ctx, chunk); err != nil {
			return entities.Contract{}, r.undoPuts(ctx, written, err)
		}
		written = append(written, chunk...)
	}
	if err := r.transact(ctx, []types.TransactWriteItem{meta}); err != nil {
		return entities.Contract{}, r.undoPuts(ctx, written, err)
	}
	return c, nil
}

// undoPuts deletes rows written by puts and returns cause, noting a failed cleanup.
func (r *LedgerDynamoRepository) undoPuts(ctx context.Context, puts []types.TransactWriteItem, cause error) error {
	deletes := make([]types.TransactWriteItem, 0, len(puts))
	for _, w := range puts {
		deletes = append(deletes, types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key:       map[string]types.AttributeValue{"pk": w.Put.Item["pk"], "sk": w.Put.Item["sk"]},
		}})
	}
	for _, chunk := range chunkWrites(deletes) {
		if err := r.transact(ctx, chunk); err != nil {
			return fmt.Errorf("%w (cleanup of partial contract failed: %v)", cause, err)
		}
	}
	return cause
}

func chunkWrites(writes []types.TransactWriteItem) [][]types.TransactWriteItem {
	var chunks [][]types.TransactWriteItem
	for start := 0; start < len(writes); start += maxTransactItems {
		end := start + maxTransactItems
		if end > len(writes) {
			end = len(writes)
		}
		chunks = append(chunks, writes[start:end])
	}
	return chunks
}

func (r *LedgerDynamoRepository) WithinContract(ctx context.Context, contractID string, fn func(tx interfaces.ILedgerTx) error) error {
	tx := &dynamoLedgerTx{dynamoLedgerReader: r.dynamoLedgerReader, contractID: contractID}

	var meta contractRow
	found, err := r.getRow(ctx, contractPK(contractID), skMeta, &meta)
	if err != nil {
		return err
	}
	if found {
		tx.version = meta.Version
	}

	if err := fn(tx); err != nil {
		return err
	}
	return tx.commit(ctx)
}

type dynamoLedgerReader struct {
	ddb       DynamoDBAPI
	tableName string
}

func (r dynamoLedgerReader) GetContract(ctx context.Context, id string) (entities.Contract, error) {
	var row contractRow
	found, err := r.getRow(ctx, contractPK(id), skMeta, &row)
	if err != nil || !found {
		return entities.Contract{}, err
	}
	return fromContractRow(row), nil
}

func (r dynamoLedgerReader) ListContracts(ctx context.Context) ([]entities.Contract, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String("#sk = :meta"),
		ExpressionAttributeNames:  map[string]string{"#sk": "sk"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":meta": &types.AttributeValueMemberS{Value: skMeta}},
		ConsistentRead:            aws.Bool(true),
	})
	var out []entities.Contract
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var rows []contractRow
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &rows); err != nil {
			return nil, err
		}
		for _, row := range rows {
			out = append(out, fromContractRow(row))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Number != out[j].Number {
			return out[i].Number < out[j].Number
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r dynamoLedgerReader) ListItems(ctx context.Context, contractID string) ([]entities.Item, error) {
	var rows []itemRow
	if err := r.queryPrefix(ctx, contractID, prefixItem, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromItemRow(row))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r dynamoLedgerReader) GetItem(ctx context.Context, contractID, itemID string) (entities.Item, error) {
	var row itemRow
	found, err := r.getRow(ctx, contractPK(contractID), itemSK(itemID), &row)
	if err != nil || !found {
		return entities.Item{}, err
	}
	return fromItemRow(row), nil
}

// ListAmendments relies on the sort key starting with the creation time.
func (r dynamoLedgerReader) ListAmendments(ctx context.Context, contractID string) ([]entities.Amendment, error) {
	var rows []amendmentRow
	if err := r.queryPrefix(ctx, contractID, prefixAmendment, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.Amendment, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromAmendmentRow(row))
	}
	return out, nil
}

func (r dynamoLedgerReader) GetOrderRequest(ctx context.Context, id string) (entities.OrderRequest, error) {
	ref, found, err := r.getRef(ctx, requestRefPK(id))
	if err != nil || !found {
		return entities.OrderRequest{}, err
	}
	var row requestRow
	found, err = r.getRow(ctx, contractPK(ref.ContractID), requestSK(id), &row)
	if err != nil || !found {
		return entities.OrderRequest{}, err
	}
	return fromRequestRow(row), nil
}

func (r dynamoLedgerReader) ListOrderRequests(ctx context.Context, contractID string) ([]entities.OrderRequest, error) {
	var rows []requestRow
	if err := r.queryPrefix(ctx, contractID, prefixRequest, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.OrderRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRequestRow(row))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r dynamoLedgerReader) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	ref, found, err := r.getRef(ctx, orderRefPK(id))
	if err != nil || !found {
		return entities.Order{}, err
	}
	return r.orderIn(ctx, ref.ContractID, id)
}

func (r dynamoLedgerReader) GetOrderByNumber(ctx context.Context, number entities.OrderNumber) (entities.Order, error) {
	ref, found, err := r.getRef(ctx, orderNumberRefPK(number))
	if err != nil || !found {
		return entities.Order{}, err
	}
	return r.orderIn(ctx, ref.ContractID, ref.TargetID)
}

func (r dynamoLedgerReader) orderIn(ctx context.Context, contractID, orderID string) (entities.Order, error) {
	var row orderRow
	found, err := r.getRow(ctx, contractPK(contractID), orderSK(orderID), &row)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderRow(row), nil
}

func (r dynamoLedgerReader) ListOrdersForContract(ctx context.Context, contractID string) ([]entities.Order, error) {
	var rows []orderRow
	if err := r.queryPrefix(ctx, contractID, prefixOrder, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromOrderRow(row))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Number.Year != out[j].Number.Year {
			return out[i].Number.Year < out[j].Number.Year
		}
		return out[i].Number.Sequence < out[j].Number.Sequence
	})
	return out, nil
}

func (r dynamoLedgerReader) ListConsumptionRecordsByOrder(ctx context.Context, orderID string) ([]entities.ConsumptionRecord, error) {
	ref, found, err := r.getRef(ctx, orderRefPK(orderID))
	if err != nil || !found {
		return nil, err
	}
	return r.records(ctx, ref.ContractID, prefixRecord+orderID+"#", nil)
}

func (r dynamoLedgerReader) ListConsumptionRecordsByItem(ctx context.Context, itemID string) ([]entities.ConsumptionRecord, error) {
	ref, found, err := r.getRef(ctx, itemRefPK(itemID))
	if err != nil || !found {
		return nil, err
	}
	return r.records(ctx, ref.ContractID, prefixRecord, func(rec entities.ConsumptionRecord) bool {
		return rec.ItemID == itemID
	})
}

func (r dynamoLedgerReader) ListConsumptionRecordsByContract(ctx context.Context, contractID string) ([]entities.ConsumptionRecord, error) {
	return r.records(ctx, contractID, prefixRecord, nil)
}

func (r dynamoLedgerReader) records(ctx context.Context, contractID, prefix string, keep func(entities.ConsumptionRecord) bool) ([]entities.ConsumptionRecord, error) {
	var rows []recordRow
	if err := r.queryPrefix(ctx, contractID, prefix, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.ConsumptionRecord, 0, len(rows))
	for _, row := range rows {
		rec := fromRecordRow(row)
		if keep == nil || keep(rec) {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r dynamoLedgerReader) getRow(ctx context.Context, pk, sk string, out any) (bool, error) {
	res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            key(pk, sk),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r dynamoLedgerReader) getRef(ctx context.Context, pk string) (refRow, bool, error) {
	var ref refRow
	found, err := r.getRow(ctx, pk, skRef, &ref)
	return ref, found, err
}

// queryPrefix loads every row of the contract partition whose sort key starts with prefix.
func (r dynamoLedgerReader) queryPrefix(ctx context.Context, contractID, prefix string, out any) error {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#pk = :pk AND begins_with(#sk, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "pk",
			"#sk": "sk",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: contractPK(contractID)},
			":prefix": &types.AttributeValueMemberS{Value: prefix},
		},
		ConsistentRead: aws.Bool(true),
	})
	var items []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		items = append(items, page.Items...)
	}
	return attributevalue.UnmarshalListOfMaps(items, out)
}

func (r dynamoLedgerReader) put(row any, mustBeNew bool) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(row)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	put := &types.Put{TableName: aws.String(r.tableName), Item: av}
	if mustBeNew {
		put.ConditionExpression = aws.String("attribute_not_exists(#pk)")
		put.ExpressionAttributeNames = map[string]string{"#pk": "pk"}
	}
	return types.TransactWriteItem{Put: put}, nil
}

func (r dynamoLedgerReader) transact(ctx context.Context, writes []types.TransactWriteItem) error {
	if len(writes) == 0 {
		return nil
	}
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	return translateDynamoError(err)
}

// dynamoLedgerTx reads committed state and buffers writes until commit.
type dynamoLedgerTx struct {
	dynamoLedgerReader
	contractID string
	version    int64
	endDate    *time.Time
	writes     []types.TransactWriteItem
}

var _ interfaces.ILedgerTx = (*dynamoLedgerTx)(nil)

func (t *dynamoLedgerTx) add(items ...types.TransactWriteItem) {
	t.writes = append(t.writes, items...)
}

func (t *dynamoLedgerTx) addPut(row any, mustBeNew bool) error {
	w, err := t.put(row, mustBeNew)
	if err != nil {
		return err
	}
	t.add(w)
	return nil
}

// update builds an Update on an existing row; set maps attribute names to values.
func (t *dynamoLedgerTx) update(pk, sk string, set map[string]types.AttributeValue, cond string, condValues map[string]types.AttributeValue) types.TransactWriteItem {
	names := map[string]string{"#pk": "pk"}
	values := make(map[string]types.AttributeValue, len(set)+len(condValues))
	expr := ""
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 {
			expr += ", "
		}
		expr += "#" + k + " = :" + k
		names["#"+k] = k
		values[":"+k] = set[k]
	}
	condition := "attribute_exists(#pk)"
	if cond != "" {
		condition += " AND " + cond
	}
	for k, v := range condValues {
		values[k] = v
	}
	return types.TransactWriteItem{Update: &types.Update{
		TableName:                 aws.String(t.tableName),
		Key:                       key(pk, sk),
		UpdateExpression:          aws.String("SET " + expr),
		ConditionExpression:       aws.String(condition),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}}
}

func (t *dynamoLedgerTx) delete(pk, sk string) types.TransactWriteItem {
	return types.TransactWriteItem{Delete: &types.Delete{
		TableName: aws.String(t.tableName),
		Key:       key(pk, sk),
	}}
}

// UpdateContractEndDate is folded into the version update at commit, since a
// transaction may touch the contract row only once.
func (t *dynamoLedgerTx) UpdateContractEndDate(_ context.Context, _ string, end time.Time) error {
	t.endDate = &end
	return nil
}

func (t *dynamoLedgerTx) InsertItem(_ context.Context, item entities.Item) error {
	if err := t.addPut(toItemRow(item), true); err != nil {
		return err
	}
	return t.addPut(refRow{PK: itemRefPK(item.ID), SK: skRef, ContractID: item.ContractID, TargetID: item.ID}, true)
}

func (t *dynamoLedgerTx) DeleteItem(_ context.Context, contractID, itemID string) error {
	t.add(t.delete(contractPK(contractID), itemSK(itemID)), t.delete(itemRefPK(itemID), skRef))
	return nil
}

func (t *dynamoLedgerTx) UpdateItemQuantity(_ context.Context, contractID, itemID string, quantity decimal.Decimal) error {
	t.add(t.update(contractPK(contractID), itemSK(itemID), map[string]types.AttributeValue{
		"quantity":   &types.AttributeValueMemberS{Value: quantity.String()},
		"updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}, "", nil))
	return nil
}

func (t *dynamoLedgerTx) InsertAmendment(_ context.Context, a entities.Amendment) error {
	return t.addPut(toAmendmentRow(a), true)
}

func (t *dynamoLedgerTx) InsertOrderRequest(_ context.Context, r entities.OrderRequest) error {
	if err := t.addPut(toRequestRow(r), true); err != nil {
		return err
	}
	return t.addPut(refRow{PK: requestRefPK(r.ID), SK: skRef, ContractID: r.ContractID, TargetID: r.ID}, true)
}

// UpdateOrderRequestStatus only moves a request that is still pending.
func (t *dynamoLedgerTx) UpdateOrderRequestStatus(_ context.Context, r entities.OrderRequest) error {
	row := toRequestRow(r)
	t.add(t.update(row.PK, row.SK, map[string]types.AttributeValue{
		"status":          &types.AttributeValueMemberS{Value: row.Status},
		"decided_by":      &types.AttributeValueMemberS{Value: row.DecidedBy},
		"decided_at":      &types.AttributeValueMemberS{Value: row.DecidedAt},
		"decision_reason": &types.AttributeValueMemberS{Value: row.DecisionReason},
		"order_id":        &types.AttributeValueMemberS{Value: row.OrderID},
		"order_number":    &types.AttributeValueMemberS{Value: row.OrderNumber},
		"updated_at":      &types.AttributeValueMemberS{Value: row.UpdatedAt},
	}, "#status = :pending", map[string]types.AttributeValue{
		":pending": &types.AttributeValueMemberS{Value: string(entities.OrderRequestStatusPendente)},
	}))
	return nil
}

// NextOrderSequence reads the yearly counter and buffers its compare-and-swap.
func (t *dynamoLedgerTx) NextOrderSequence(ctx context.Context, year int) (int, error) {
	var seq sequenceRow
	found, err := t.getRow(ctx, sequencePK(year), skCounter, &seq)
	if err != nil {
		return 0, err
	}
	if !found {
		if err := t.addPut(sequenceRow{PK: sequencePK(year), SK: skCounter, Last: 1}, true); err != nil {
			return 0, err
		}
		return 1, nil
	}

	next := seq.Last + 1
	t.add(t.update(sequencePK(year), skCounter, map[string]types.AttributeValue{
		"last": &types.AttributeValueMemberN{Value: strconv.Itoa(next)},
	}, "#last = :current", map[string]types.AttributeValue{
		":current": &types.AttributeValueMemberN{Value: strconv.Itoa(seq.Last)},
	}))
	return next, nil
}

// InsertOrder also claims the order number; a second order with the same number fails
// the attribute_not_exists condition of its REF row.
func (t *dynamoLedgerTx) InsertOrder(_ context.Context, o entities.Order) error {
	if err := t.addPut(toOrderRow(o), true); err != nil {
		return err
	}
	if err := t.addPut(refRow{PK: orderRefPK(o.ID), SK: skRef, ContractID: o.ContractID, TargetID: o.ID}, true); err != nil {
		return err
	}
	return t.addPut(refRow{PK: orderNumberRefPK(o.Number), SK: skRef, ContractID: o.ContractID, TargetID: o.ID}, true)
}

func (t *dynamoLedgerTx) TouchOrder(_ context.Context, o entities.Order) error {
	t.add(t.update(contractPK(o.ContractID), orderSK(o.ID), map[string]types.AttributeValue{
		"updated_at": &types.AttributeValueMemberS{Value: formatTime(o.UpdatedAt)},
	}, "", nil))
	return nil
}

func (t *dynamoLedgerTx) InsertConsumptionRecords(_ context.Context, records []entities.ConsumptionRecord) error {
	for _, rec := range records {
		if err := t.addPut(toRecordRow(rec), true); err != nil {
			return err
		}
	}
	return nil
}

func (t *dynamoLedgerTx) UpdateConsumptionRecord(_ context.Context, rec entities.ConsumptionRecord) error {
	t.add(t.update(contractPK(rec.ContractID), recordSK(rec.OrderID, rec.ID), map[string]types.AttributeValue{
		"quantity":   &types.AttributeValueMemberS{Value: rec.Quantity.String()},
		"updated_at": &types.AttributeValueMemberS{Value: formatTime(rec.UpdatedAt)},
	}, "", nil))
	return nil
}

func (t *dynamoLedgerTx) DeleteConsumptionRecords(_ context.Context, orderID string, ids []string) error {
	for _, id := range ids {
		t.add(t.delete(contractPK(t.contractID), recordSK(orderID, id)))
	}
	return nil
}

// commit sends the buffered writes plus the contract version bump as one transaction.
func (t *dynamoLedgerTx) commit(ctx context.Context) error {
	if len(t.writes) == 0 && t.endDate == nil {
		return nil
	}

	set := map[string]types.AttributeValue{
		"version":    &types.AttributeValueMemberN{Value: strconv.FormatInt(t.version+1, 10)},
		"updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	if t.endDate != nil {
		set["end_date"] = &types.AttributeValueMemberS{Value: formatTime(*t.endDate)}
	}
	bump := t.update(contractPK(t.contractID), skMeta, set, "#version = :read", map[string]types.AttributeValue{
		":read": &types.AttributeValueMemberN{Value: strconv.FormatInt(t.version, 10)},
	})

	writes := append([]types.TransactWriteItem{bump}, t.writes...)
	if len(writes) > maxTransactItems {
		return fmt.Errorf("%w: %d writes", ErrTransactionTooLarge, len(writes))
	}
	return t.transact(ctx, writes)
}

func key(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: pk},
		"sk": &types.AttributeValueMemberS{Value: sk},
	}
}

// translateDynamoError maps failed conditions and transaction conflicts to
// interfaces.ErrConflict; DynamoDB applied none of the writes in both cases.
func translateDynamoError(err error) error {
	if err == nil {
		return nil
	}
	var canceled *types.TransactionCanceledException
	if errors.As(err, &canceled) {
		for _, reason := range canceled.CancellationReasons {
			code := aws.ToString(reason.Code)
			if code == "ConditionalCheckFailed" || code == "TransactionConflict" {
				return fmt.Errorf("%w: %s", interfaces.ErrConflict, code)
			}
		}
		return err
	}
	var conflict *types.TransactionConflictException
	if errors.As(err, &conflict) {
		return interfaces.ErrConflict
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrConflict
	}
	return err
}
