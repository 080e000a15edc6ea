// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ingest.go - upload a NetCDF profile file to the backend.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// HandleIngest uploads a NetCDF file and reports the float it produced.
func HandleIngest(args Args) error {
	if args.File == "" {
		return fmt.Errorf("usage: floatchat ingest <file.nc>")
	}
	if !strings.HasSuffix(strings.ToLower(args.File), ".nc") {
		return fmt.Errorf("%s does not look like a NetCDF file (.nc)", args.File)
	}
	if _, err := os.Stat(args.File); err != nil {
		return fmt.Errorf("cannot read %s: %w", args.File, err)
	}

	client, err := newClient(args)
	if err != nil {
		return err
	}

	if args.JSON {
		return OutputJSON("ingest", func() (any, error) {
			return client.IngestNetCDF(context.Background(), args.File)
		})
	}

	if !args.Quiet {
		fmt.Println(infoStyle.Render("Uploading " + args.File + "..."))
	}

	result, err := client.IngestNetCDF(context.Background(), args.File)
	if err != nil {
		printSmartError(err)
		return err
	}

	fmt.Printf("%s float %s: %d profiles inserted\n",
		okStyle.Render("Ingested"), result.Float.FloatID, result.InsertedProfiles)

	// Refresh the catalog so the confirmation reflects the new float.
	if floats, err := client.ListFloats(context.Background()); err == nil {
		fmt.Println(infoStyle.Render(fmt.Sprintf("Catalog now holds %d floats.", len(floats))))
	}
	return nil
}
