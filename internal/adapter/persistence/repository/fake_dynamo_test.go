package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type fakeDynamo struct {
	putIn    []*dynamodb.PutItemInput
	getIn    []*dynamodb.GetItemInput
	updateIn []*dynamodb.UpdateItemInput
	deleteIn []*dynamodb.DeleteItemInput
	scanIn   []*dynamodb.ScanInput

	putErr    error
	getOut    *dynamodb.GetItemOutput
	getErr    error
	updateOut *dynamodb.UpdateItemOutput
	updateErr error
	deleteErr error
	scanPages []*dynamodb.ScanOutput
	scanErr   error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = append(f.putIn, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = append(f.getIn, in)
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = append(f.updateIn, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deleteIn = append(f.deleteIn, in)
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanIn = append(f.scanIn, in)
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	if len(f.scanPages) == 0 {
		return &dynamodb.ScanOutput{}, nil
	}
	page := f.scanPages[0]
	f.scanPages = f.scanPages[1:]
	return page, nil
}
