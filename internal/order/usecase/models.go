package usecase

import "github.com/jk0601/agorder/internal/order/entity"

type UploadResult struct {
	File       entity.UploadedFile
	Preview    entity.Preview
	Validation entity.ValidationResult
}

type SaveMappingInput struct {
	Name         string
	SourceFields []string
	TargetFields []string
	Rules        []entity.FieldRule
}

type SaveMappingResult struct {
	MappingID string
}

type GenerateInput struct {
	FileID       string
	MappingID    string
	TemplateType string
}

type GenerateResult struct {
	FileName      string
	DownloadURL   string
	ProcessedRows int
	RowErrors     []entity.RowError
}
