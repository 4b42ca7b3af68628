package client

const (
	endpointElements          = "/elements"           // GET - list all element names
	endpointElementByName     = "/element/%s"         // GET - full resolution
	endpointElementLabel      = "/element/%s/label"   // GET - label only
	endpointElementReferences = "/element/%s/references" // GET - references only
	endpointSearch            = "/search"             // GET - keyword search
)
