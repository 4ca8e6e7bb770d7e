package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/go-sml/message"
	"github.com/arloliu/go-sml/obis"
	"github.com/arloliu/go-sml/sml"
)

// reading is one row printed by the values command.
type reading struct {
	File     string          `json:"file" yaml:"file"`
	ServerID sml.OctetString `json:"serverId" yaml:"serverId"`
	Code     string          `json:"code" yaml:"code"`
	Name     string          `json:"name" yaml:"name"`
	Value    string          `json:"value" yaml:"value"`
	Unit     string          `json:"unit,omitempty" yaml:"unit,omitempty"`
	Time     *sml.Time       `json:"time,omitempty" yaml:"time,omitempty"`
}

func newValuesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "values [files...]",
		Short: "Print the readings of the GetList responses in SML files",
		Long: `Print one row per list entry of every GetList response. Object names that are
OBIS codes are resolved to their names; additional names can be set in the
[[obis]] tables of the configuration file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValues(cmd.InOrStdin(), args)
		},
	}
}

func (a *app) runValues(stdin io.Reader, paths []string) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var rows []reading
	for _, path := range paths {
		file, err := a.decodeFile(path, stdin)
		if err != nil {
			return err
		}
		rows = append(rows, a.readings(path, file)...)
		file.Free()
	}

	if a.cfg.Format != "text" {
		return writeStructured(a.out, a.cfg.Format, rows)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tSERVER\tCODE\tNAME\tVALUE\tUNIT")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", row.File, row.ServerID.Hex(), row.Code, row.Name, row.Value, row.Unit)
	}

	return tw.Flush()
}

func (a *app) readings(path string, file *message.File) []reading {
	var rows []reading
	for _, body := range file.Bodies(message.GetListResponseTag) {
		resp, ok := body.(*message.GetListResponse)
		if !ok || resp.ValList == nil {
			continue
		}

		for entry := range resp.ValList.All() {
			if entry.Value == nil {
				continue
			}
			rows = append(rows, a.reading(path, resp.ServerID, entry))
		}
	}

	return rows
}

func (a *app) reading(path string, serverID sml.OctetString, entry *sml.ListEntry) reading {
	row := reading{
		File:     path,
		ServerID: serverID.Clone(),
		Code:     entry.ObjName.Hex(),
		Name:     a.names.Name(entry.ObjName),
		Time:     entry.ValTime,
	}
	if code, ok := obis.FromOctetString(entry.ObjName); ok {
		row.Code = code.String()
	}

	if v, ok := entry.ScaledValue(); ok {
		row.Value = strconv.FormatFloat(v, 'f', -1, 64)
	} else {
		row.Value = entry.Value.String()
	}
	if entry.Unit != nil {
		row.Unit = obis.Unit(*entry.Unit).Symbol()
	}

	return row
}
