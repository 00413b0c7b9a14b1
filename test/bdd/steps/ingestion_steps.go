package steps

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cucumber/godog"
	"gorm.io/gorm"

	"github.com/andrescamacho/wakfudb/internal/adapters/persistence"
	"github.com/andrescamacho/wakfudb/internal/application/ingest"
	"github.com/andrescamacho/wakfudb/internal/domain/catalog"
	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
	"github.com/andrescamacho/wakfudb/internal/domain/shared"
	"github.com/andrescamacho/wakfudb/internal/infrastructure/database"
	"github.com/andrescamacho/wakfudb/test/helpers"
)

type ingestionContext struct {
	db      *gorm.DB
	fetcher *helpers.MockFetcher
	reports []*ingest.Report
}

func (ic *ingestionContext) reset() error {
	if ic.db != nil {
		database.Close(ic.db)
	}
	db, err := database.NewTestConnection()
	if err != nil {
		return fmt.Errorf("failed to create test database: %w", err)
	}
	ic.db = db
	ic.fetcher = helpers.NewMockFetcher("1.88.1.30")
	ic.reports = nil
	return nil
}

func (ic *ingestionContext) decode(raw string) (gamedata.RawRecord, error) {
	var record gamedata.RawRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("invalid fixture JSON: %w", err)
	}
	return record, nil
}

func (ic *ingestionContext) setPayload(category catalog.Category, raws ...string) error {
	records := make([]gamedata.RawRecord, 0, len(raws))
	for _, raw := range raws {
		record, err := ic.decode(raw)
		if err != nil {
			return err
		}
		records = append(records, record)
	}
	ic.fetcher.SetPayload(category, records)
	return nil
}

func (ic *ingestionContext) lastReport() (*ingest.Report, error) {
	if len(ic.reports) == 0 {
		return nil, fmt.Errorf("no batch has been run yet")
	}
	return ic.reports[len(ic.reports)-1], nil
}

func (ic *ingestionContext) categoryReport(name string) (*ingest.CategoryReport, error) {
	report, err := ic.lastReport()
	if err != nil {
		return nil, err
	}
	for i := range report.Categories {
		if report.Categories[i].Category == catalog.Category(name) {
			return &report.Categories[i], nil
		}
	}
	return nil, fmt.Errorf("category %s not in report", name)
}

const itemTemplate = `{
	"definition": {
		"item": {
			"id": %d,
			"level": 12,
			"baseParameters": {
				"itemTypeId": 120, "itemSetId": 0, "rarity": 2, "bindType": 0,
				"minimumShardSlotNumber": 1, "maximumShardSlotNumber": 4
			},
			"useParameters": {
				"useCostAp": 0, "useCostMp": 0, "useCostWp": 0,
				"useRangeMin": 0, "useRangeMax": 0,
				"useTestFreeCell": false, "useTestLos": false,
				"useTestOnlyLine": false, "useTestNoBorderCell": false,
				"useWorldTarget": 0
			},
			"graphicParameters": {"gfxId": 1100, "femaleGfxId": 1101}
		},
		"equipEffects": [
			{"effect": {"definition": {"id": %d, "actionId": %d, "areaShape": 32767},
				"description": {"fr": "Effet"}}}
		]
	},
	"title": {"fr": "Objet", "en": "Item"},
	"description": {"fr": "Description"}
}`

// Setup steps

func (ic *ingestionContext) anEmptyDatabase() error {
	return nil // The Before hook already built a fresh schema.
}

func (ic *ingestionContext) theStandardReferencePayloads() error {
	if err := ic.setPayload(catalog.Actions,
		`{"definition": {"id": 1, "effect": "Gain: Vie"}, "description": {"fr": "Soigne"}}`); err != nil {
		return err
	}
	if err := ic.setPayload(catalog.ItemTypes,
		`{"definition": {"id": 120}, "title": {"fr": "Hache", "en": "Axe"}}`); err != nil {
		return err
	}
	if err := ic.setPayload(catalog.EquipmentItemTypes,
		`{"definition": {"id": 600}}`); err != nil {
		return err
	}
	if err := ic.setPayload(catalog.ItemProperties,
		`{"id": 1, "name": "TREASURE", "description": "Treasure item"}`); err != nil {
		return err
	}
	return ic.setPayload(catalog.States,
		`{"definition": {"id": 9}, "title": {"en": "Invisible"}}`)
}

func (ic *ingestionContext) anItemsPayloadWithOneFullyDescribedItem() error {
	return ic.setPayload(catalog.Items, fmt.Sprintf(itemTemplate, 2022, 202200, 1))
}

func (ic *ingestionContext) anItemsPayloadReferencingAnUnknownAction() error {
	return ic.setPayload(catalog.Items, fmt.Sprintf(itemTemplate, 2022, 202200, 999))
}

func (ic *ingestionContext) anActionsPayloadWithoutDescription() error {
	return ic.setPayload(catalog.Actions, `{"definition": {"id": 1, "effect": "Gain: Vie"}}`)
}

func (ic *ingestionContext) anActionsPayloadWithNullDescription() error {
	return ic.setPayload(catalog.Actions,
		`{"definition": {"id": 1, "effect": "Gain: Vie"}, "description": null}`)
}

func (ic *ingestionContext) anActionsPayloadWithEmptyDescription() error {
	return ic.setPayload(catalog.Actions,
		`{"definition": {"id": 1, "effect": "Gain: Vie"}, "description": {}}`)
}

func (ic *ingestionContext) anActionsPayloadWithOneMalformedRecord() error {
	return ic.setPayload(catalog.Actions,
		`{"definition": {"id": 1, "effect": "Gain: Vie"}}`,
		`{"definition": {"effect": "no id"}}`,
		`{"definition": {"id": 3, "effect": "Perte: PA"}}`)
}

func (ic *ingestionContext) theStatesCategoryCannotBeFetched() error {
	ic.fetcher.SetFetchError(catalog.States,
		shared.NewRetrievalError("states", fmt.Errorf("connection refused")))
	return nil
}

// Action steps

func (ic *ingestionContext) iRunTheBatchForVersion(version string) error {
	orchestrator := ingest.NewOrchestrator(ic.fetcher, persistence.NewMaterializer(ic.db), nil, ingest.Options{})
	report, err := orchestrator.Run(context.Background(), version)
	if err != nil {
		return err
	}
	ic.reports = append(ic.reports, report)
	return nil
}

// Assertion steps

func (ic *ingestionContext) theSecondRunReportsEveryRecordAsAlreadyPresent() error {
	if len(ic.reports) < 2 {
		return fmt.Errorf("expected two runs, got %d", len(ic.reports))
	}
	second := ic.reports[1]
	for _, cat := range second.Categories {
		if cat.Inserted != 0 {
			return fmt.Errorf("category %s inserted %d records on rerun", cat.Category, cat.Inserted)
		}
		if cat.DuplicateSkipped != cat.Fetched {
			return fmt.Errorf("category %s: %d of %d records reported as duplicates",
				cat.Category, cat.DuplicateSkipped, cat.Fetched)
		}
	}
	return nil
}

func (ic *ingestionContext) theDatabaseHoldsExactlyNItems(expected int) error {
	return ic.countRows(&persistence.ItemModel{}, "items", expected)
}

func (ic *ingestionContext) theDatabaseHoldsExactlyNActions(expected int) error {
	return ic.countRows(&persistence.ActionModel{}, "actions", expected)
}

func (ic *ingestionContext) countRows(model any, table string, expected int) error {
	var count int64
	if err := ic.db.Model(model).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %s, found %d", expected, table, count)
	}
	return nil
}

func (ic *ingestionContext) theActionRowExistsWithoutADescriptionRow() error {
	if err := ic.countRows(&persistence.ActionModel{}, "actions", 1); err != nil {
		return err
	}
	return ic.countRows(&persistence.ActionDescriptionModel{}, "action_descriptions", 0)
}

func (ic *ingestionContext) categoryReportsMalformed(name string, expected int) error {
	cat, err := ic.categoryReport(name)
	if err != nil {
		return err
	}
	if cat.MalformedSkipped != expected {
		return fmt.Errorf("expected %d malformed records in %s, got %d", expected, name, cat.MalformedSkipped)
	}
	return nil
}

func (ic *ingestionContext) categoryReportsFailedRecords(name string, expected int) error {
	cat, err := ic.categoryReport(name)
	if err != nil {
		return err
	}
	if cat.Failed != expected {
		return fmt.Errorf("expected %d failed records in %s, got %d", expected, name, cat.Failed)
	}
	return nil
}

func (ic *ingestionContext) categoryIsReportedAsAborted(name string) error {
	cat, err := ic.categoryReport(name)
	if err != nil {
		return err
	}
	if !cat.Aborted {
		return fmt.Errorf("category %s was not aborted", name)
	}
	return nil
}

// InitializeIngestionScenario registers the batch ingestion step definitions
func InitializeIngestionScenario(sc *godog.ScenarioContext) {
	ic := &ingestionContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, ic.reset()
	})

	sc.Step(`^an empty database$`, ic.anEmptyDatabase)
	sc.Step(`^the standard reference payloads$`, ic.theStandardReferencePayloads)
	sc.Step(`^an items payload with one fully described item$`, ic.anItemsPayloadWithOneFullyDescribedItem)
	sc.Step(`^an items payload with one item whose effect references an unknown action$`, ic.anItemsPayloadReferencingAnUnknownAction)
	sc.Step(`^an actions payload with one action carrying no description$`, ic.anActionsPayloadWithoutDescription)
	sc.Step(`^an actions payload with one action whose description is null$`, ic.anActionsPayloadWithNullDescription)
	sc.Step(`^an actions payload with one action whose description is an empty object$`, ic.anActionsPayloadWithEmptyDescription)
	sc.Step(`^an actions payload where the second of three records is missing its id$`, ic.anActionsPayloadWithOneMalformedRecord)
	sc.Step(`^the states category cannot be fetched$`, ic.theStatesCategoryCannotBeFetched)

	sc.Step(`^I run the batch for version "([^"]*)"(?: again)?$`, ic.iRunTheBatchForVersion)

	sc.Step(`^the second run reports every record as already present$`, ic.theSecondRunReportsEveryRecordAsAlreadyPresent)
	sc.Step(`^the database holds exactly (\d+) items?$`, ic.theDatabaseHoldsExactlyNItems)
	sc.Step(`^the database holds exactly (\d+) actions?$`, ic.theDatabaseHoldsExactlyNActions)
	sc.Step(`^the action row exists without a description row$`, ic.theActionRowExistsWithoutADescriptionRow)
	sc.Step(`^the (\w+) category reports (\d+) malformed records?$`, ic.categoryReportsMalformed)
	sc.Step(`^the (\w+) category reports (\d+) failed records?$`, ic.categoryReportsFailedRecords)
	sc.Step(`^the (\w+) category is reported as aborted$`, ic.categoryIsReportedAsAborted)
}
