// Package ordertests contains the order-request scenarios themselves and their supporting API.
//
// Infrastructure that is not specific to the order-request domain, such as the mock network
// layer and the interaction driver, is in the lower-level framework packages.
package ordertests
