package semanticscholar_test

import (
	"fmt"

	"github.com/matzehuels/s2datasets/pkg/integrations/semanticscholar"
)

func ExampleReleaseFileName() {
	fmt.Println(semanticscholar.ReleaseFileName("papers", "2024-12-31", 0))
	fmt.Println(semanticscholar.ReleaseFileName("papers", "", 3))
	// Output:
	// papers_2024-12-31_0.json.gz
	// papers_latest_3.json.gz
}

func ExampleDiffFileName() {
	fmt.Println(semanticscholar.DiffFileName("authors", "2024-01-01", "2024-02-01", semanticscholar.DiffUpdate, 0))
	fmt.Println(semanticscholar.DiffFileName("authors", "2024-01-01", "2024-02-01", semanticscholar.DiffDelete, 1))
	// Output:
	// authors_2024-01-01_2024-02-01_update_0.json.gz
	// authors_2024-01-01_2024-02-01_delete_1.json.gz
}

func ExampleValidateDataset() {
	fmt.Println(semanticscholar.ValidateDataset("papers") == nil)
	fmt.Println(semanticscholar.ValidateDataset("books") != nil)
	// Output:
	// true
	// true
}

func ExampleClient_ListDatasets() {
	client := semanticscholar.NewClient()
	defer client.Close()

	for _, name := range client.ListDatasets()[:3] {
		fmt.Println(name)
	}
	// Output:
	// abstracts
	// authors
	// citations
}
