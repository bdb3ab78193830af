package supplychain

import (
	"sort"

	"github.com/hyperledger-archives/sawtooth-supply-chain/addressing"
)

// handleUpdateProperties appends one reported value per update entry to its
// Property's current page, advancing the 256-slot page ring when a page fills.
func handleUpdateProperties(action UpdatePropertiesAction, signer string, timestamp uint64, state *State) error {
	record, exists, err := state.GetRecord(action.RecordID)
	if err != nil {
		return err
	}
	if !exists {
		return invalidf("Record does not exist: %s", action.RecordID)
	}
	if record.Final {
		return invalidf("Record is final: %s", action.RecordID)
	}

	for _, update := range action.Properties {
		if err := applyPropertyUpdate(action.RecordID, update, signer, timestamp, state); err != nil {
			return err
		}
	}
	return nil
}

func applyPropertyUpdate(recordID string, update PropertyValue, signer string, timestamp uint64, state *State) error {
	property, exists, err := state.GetProperty(recordID, update.Name)
	if err != nil {
		return err
	}
	if !exists {
		return invalidf("Record does not have provided poperty: %s", update.Name)
	}

	reporterIndex, allowed := authorizedReporterIndex(property, signer)
	if !allowed {
		return invalidf("Reporter is not authorized: %s", signer)
	}

	if update.DataType != property.DataType {
		return invalidf("Update has wrong type: %s != %s", update.DataType, property.DataType)
	}

	pageNumber := property.CurrentPage
	page, exists, err := state.GetPropertyPage(recordID, update.Name, pageNumber)
	if err != nil {
		return err
	}
	if !exists {
		return invalidf("Property page does not exist")
	}

	reported, err := makeReportedValue(reporterIndex, timestamp, update, property)
	if err != nil {
		return err
	}
	page.ReportedValues = append(page.ReportedValues, reported)
	sortReportedValues(page.ReportedValues)

	if err := state.SetPropertyPage(recordID, update.Name, pageNumber, page); err != nil {
		return err
	}

	if len(page.ReportedValues) >= addressing.PropertyPageMax {
		return advancePage(recordID, update.Name, pageNumber, property, state)
	}
	return nil
}

func authorizedReporterIndex(property Property, signer string) (uint32, bool) {
	for _, r := range property.Reporters {
		if r.PublicKey == signer && r.Authorized {
			return r.Index, true
		}
	}
	return 0, false
}

// sortReportedValues re-sorts a page's reported values by (timestamp, reporter
// index), stable on ties.
func sortReportedValues(values []ReportedValue) {
	sort.SliceStable(values, func(i, j int) bool {
		a, b := values[i], values[j]
		if a.Timestamp != b.Timestamp {
			return a.Timestamp < b.Timestamp
		}
		return a.ReporterIndex < b.ReporterIndex
	})
}

// advancePage moves property onto the next page of its ring, wrapping
// 256->1, and clears the target page's reported values before use.
func advancePage(recordID, name string, currentPage uint32, property Property, state *State) error {
	newPage := currentPage + 1
	if newPage > addressing.PropertyPageMax {
		newPage = addressing.PropertyPageMin
	}

	target, exists, err := state.GetPropertyPage(recordID, name, newPage)
	if err != nil {
		return err
	}
	if exists {
		target.ReportedValues = nil
	} else {
		target = PropertyPage{Name: name, RecordID: recordID}
	}
	if err := state.SetPropertyPage(recordID, name, newPage, target); err != nil {
		return err
	}

	property.CurrentPage = newPage
	if newPage == addressing.PropertyPageMin && !property.Wrapped {
		property.Wrapped = true
	}
	return state.SetProperty(property)
}
