// Command supply-chain-tp is a minimal local harness for the supply_chain
// transaction family: it wires a TransactionHandler to an in-memory
// TransactionContext and applies a short scripted sequence of actions,
// logging each dispatch. It does not implement the ledger host, wire
// transport, or consensus — those are the responsibility of the validator
// this family would run inside of in production.
package main

import (
	"encoding/json"
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	supplychain "github.com/hyperledger-archives/sawtooth-supply-chain"
	"github.com/hyperledger-archives/sawtooth-supply-chain/internal/memstate"
	"github.com/hyperledger-archives/sawtooth-supply-chain/internal/telemetry"
	"github.com/hyperledger-archives/sawtooth-supply-chain/pkg/txnconfig"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := txnconfig.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	telemetry.Logger = log.StandardLogger()

	handler := supplychain.NewTransactionHandler()
	log.WithFields(log.Fields{
		"family":     handler.FamilyName(),
		"versions":   handler.FamilyVersions(),
		"namespaces": handler.Namespaces(),
	}).Info("supply_chain transaction handler ready")

	store := memstate.New()
	const signer = "demo-signer-0000000000000000000000000000000000000000000000000000000000000000"

	run(handler, store, signer, supplychain.SCPayload{
		Action:      supplychain.ActionCreateAgent,
		Timestamp:   1,
		CreateAgent: &supplychain.CreateAgentAction{Name: "demo agent"},
	})

	run(handler, store, signer, supplychain.SCPayload{
		Action:    supplychain.ActionCreateRecordType,
		Timestamp: 2,
		CreateRecordType: &supplychain.CreateRecordTypeAction{
			Name: "widget",
			Properties: []supplychain.PropertySchema{
				{Name: "color", DataType: supplychain.TypeString, Required: true},
			},
		},
	})

	run(handler, store, signer, supplychain.SCPayload{
		Action:    supplychain.ActionCreateRecord,
		Timestamp: 3,
		CreateRecord: &supplychain.CreateRecordAction{
			RecordID:   "widget-1",
			RecordType: "widget",
			Properties: []supplychain.PropertyValue{
				{Name: "color", DataType: supplychain.TypeString, StringValue: "red"},
			},
		},
	})

	log.WithField("addresses_written", store.Len()).Info("demo sequence complete")
}

func run(handler *supplychain.TransactionHandler, store *memstate.Store, signer string, payload supplychain.SCPayload) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Fatal("failed to encode demo payload")
	}
	if err := handler.Apply(raw, signer, store); err != nil {
		log.WithError(err).WithField("action", payload.Action.String()).Error("transaction rejected")
		os.Exit(1)
	}
}
