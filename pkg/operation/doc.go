/*
Package operation implements the pipeline flows that tie the catalog
stages together.

	+-----------+     +----------+     +------------+
	| Searching | --> | Ordering | --> | Downloading| --> Reporting
	+-----------+     +----------+     +------------+

🎯 Purpose:
- Sequences searching, ordering and downloading into the supported flows
- Defines the fatal/warn/continue policy at each junction
- Exports accumulated results on every exit path

🔄 Flows:
1. full: search, confirm or trim, order, download, report
2. order-csv: ingest a UI CSV export, resolve record ids, order, download
3. download-aoi: search, look up existing orders, download
4. download-only: ingest a previous results CSV, look up orders, download
5. search-only: search and export, nothing else

⚡ Junction policy:
- Zero search results and zero submitted orders are fatal
- Skipped filters, skipped CSV rows and failed batches are warnings
- Zero downloads is informational; failures stay on the records as status
- Cancellation is observed between stages, never inside a batch

🤝 Collaborators:
- rapi.Client: the catalog capability set
- prompt.Prompter: the injected interactive decision points
- export: results CSV and geospatial projection
- log.Logger: the user-facing console report
*/
package operation
