package storage

import (
	"database/sql"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/indexly/subgraph-store/internal/common"
	"github.com/indexly/subgraph-store/internal/metrics"
	"github.com/rs/zerolog/log"
)

// Queryer is the part of database/sql the loader needs. *sql.DB and *sql.Tx
// both satisfy it; the connection stays owned by the caller.
type Queryer interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

// Query to load the data sources. Ordering by the creation block and vid
// makes sure they are in insertion order, which is important for the
// correctness of reverts and the execution order of triggers.
const loadDynamicDataSourcesQuery = `
	SELECT ds.id, ds.name, ds.context,
	       src.address, src.abi, src.start_block,
	       ds.block_range
	FROM subgraphs.dynamic_ethereum_contract_data_source ds
	JOIN subgraphs.ethereum_contract_source src ON ds.source = src.id
	WHERE ds.deployment = $1
	ORDER BY ds.ethereum_block_number, ds.vid`

// dynamicDataSourceRow is one joined row before validation. Address is nil
// when the stored column is NULL; StartBlock carries the NUMERIC value as
// the driver returns it, a decimal string.
type dynamicDataSourceRow struct {
	ID         string
	Name       string
	Context    sql.NullString
	Address    []byte
	ABI        string
	StartBlock sql.NullString
	BlockRange string
}

// toSource validates the source fields of one row. A row without an address
// means the write path left the deployment in a corrupt state, so absence is
// an error rather than a valid "no address" source. A missing start block is
// treated as 0, indexing from genesis.
func toSource(deployment string, dsID string, row dynamicDataSourceRow) (common.Source, error) {
	if row.Address == nil {
		return common.Source{}, constraintViolation(
			"dynamic data source %s for deployment %s is missing an address", dsID, deployment)
	}
	if len(row.Address) != 20 {
		return common.Source{}, constraintViolation(
			"data source address 0x%x for dynamic data source %s in deployment %s should be 20 bytes long but is %d bytes long",
			row.Address, dsID, deployment, len(row.Address))
	}

	startBlock := uint64(0)
	if row.StartBlock.Valid {
		n, err := common.DecimalToUint64(row.StartBlock.String)
		if err != nil {
			return common.Source{}, constraintViolation(
				"start block %s for dynamic data source %s in deployment %s is not a uint64",
				row.StartBlock.String, dsID, deployment)
		}
		startBlock = n
	}

	return common.Source{
		Address:    gethCommon.BytesToAddress(row.Address),
		ABI:        row.ABI,
		StartBlock: startBlock,
	}, nil
}

// creationBlock derives the creation point of a row, the inclusive lower
// bound of its block range. Nil means no lower bound was recorded.
func creationBlock(deployment string, dsID string, blockRange string) (*uint64, error) {
	r, err := common.ParseBlockRange(blockRange)
	if err != nil {
		return nil, constraintViolation(
			"block range %s for dynamic data source %s in deployment %s is malformed: %s",
			blockRange, dsID, deployment, err)
	}
	first := r.FirstBlock()
	if first == nil {
		return nil, nil
	}
	if *first < 0 {
		return nil, constraintViolation(
			"block range %s for dynamic data source %s in deployment %s starts at a negative block",
			blockRange, dsID, deployment)
	}
	block := uint64(*first)
	return &block, nil
}

// assembleDataSources validates each row in order and enforces that creation
// points never decrease, treating an absent creation point as the minimum
// possible value. On any violation it returns an error and no data sources.
func assembleDataSources(deployment string, rows []dynamicDataSourceRow) ([]common.DynamicDataSource, error) {
	dataSources := make([]common.DynamicDataSource, 0, len(rows))
	var prev *uint64
	for _, row := range rows {
		source, err := toSource(deployment, row.ID, row)
		if err != nil {
			return nil, err
		}

		creation, err := creationBlock(deployment, row.ID, row.BlockRange)
		if err != nil {
			return nil, err
		}

		if prev != nil && (creation == nil || *creation < *prev) {
			return nil, constraintViolation(
				"data sources for deployment %s are not ordered by creation block", deployment)
		}
		prev = creation

		var context *string
		if row.Context.Valid {
			c := row.Context.String
			context = &c
		}

		dataSources = append(dataSources, common.DynamicDataSource{
			Name:          row.Name,
			Source:        source,
			Context:       context,
			CreationBlock: creation,
		})
	}
	return dataSources, nil
}

// LoadDynamicDataSources returns the dynamic data sources registered for a
// deployment, ordered by creation block with insertion order breaking ties.
// Constraint violations abort the load with no partial result; query errors
// are propagated as the driver reports them.
func LoadDynamicDataSources(q Queryer, deploymentID string) ([]common.DynamicDataSource, error) {
	metrics.DynamicDataSourceLoads.Inc()

	rows, err := q.Query(loadDynamicDataSourcesQuery, deploymentID)
	if err != nil {
		metrics.DynamicDataSourceLoadErrors.Inc()
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close rows in LoadDynamicDataSources")
		}
	}()

	rawRows := make([]dynamicDataSourceRow, 0)
	for rows.Next() {
		var row dynamicDataSourceRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Context, &row.Address, &row.ABI, &row.StartBlock, &row.BlockRange); err != nil {
			metrics.DynamicDataSourceLoadErrors.Inc()
			return nil, err
		}
		rawRows = append(rawRows, row)
	}
	if err := rows.Err(); err != nil {
		metrics.DynamicDataSourceLoadErrors.Inc()
		return nil, err
	}

	dataSources, err := assembleDataSources(deploymentID, rawRows)
	if err != nil {
		if IsConstraintViolation(err) {
			metrics.DynamicDataSourceConstraintViolations.Inc()
			log.Warn().Err(err).Str("deployment", deploymentID).Msg("Dynamic data sources failed validation")
		} else {
			metrics.DynamicDataSourceLoadErrors.Inc()
		}
		return nil, err
	}

	metrics.LastLoadedDynamicDataSources.Set(float64(len(dataSources)))
	log.Debug().Str("deployment", deploymentID).Int("count", len(dataSources)).Msg("Loaded dynamic data sources")
	return dataSources, nil
}

// LoadDynamicDataSources loads over the connector's own connection pool.
func (p *PostgresConnector) LoadDynamicDataSources(deploymentID string) ([]common.DynamicDataSource, error) {
	return LoadDynamicDataSources(p.db, deploymentID)
}
