package mcp

import (
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/manage-jobs/internal/card"
	"github.com/honeycarbs/manage-jobs/internal/domain/joblist"
	"github.com/honeycarbs/manage-jobs/internal/mcp/tools"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
)

type ToolRegistry struct {
	logger *logging.Logger
}

// Resources holds everything the MCP tools and HTTP probes need
type Resources struct {
	Controller *joblist.Controller
	Clipboard  card.Clipboard
	Exporter   tools.Exporter
	SheetsID   string
}

func NewToolRegistry(logger *logging.Logger) *ToolRegistry {
	return &ToolRegistry{logger: logger}
}

func (r *ToolRegistry) RegisterAll(server *sdkmcp.Server, res Resources) error {
	if res.Controller == nil {
		return fmt.Errorf("mcp: job list controller not configured")
	}

	if err := tools.RegisterJobTools(server, res.Controller, r.logger.Named("jobs")); err != nil {
		return err
	}

	if err := tools.RegisterCardTools(server, res.Controller, res.Clipboard, r.logger.Named("card")); err != nil {
		return err
	}

	if err := tools.RegisterExportTools(server, res.Controller, res.Exporter, res.SheetsID, r.logger.Named("export")); err != nil {
		return err
	}

	return nil
}
