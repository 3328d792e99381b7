package catalog

import (
	"crypto/rand"
	"fmt"
)

const idSuffixLength = 12

const idAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Identifier prefixes per resource kind
const (
	portfolioIDPrefix   = "port"
	productIDPrefix     = "prod"
	productViewIDPrefix = "prodview"
	artifactIDPrefix    = "pa"
	constraintIDPrefix  = "cons"
	launchPathIDPrefix  = "lpv3"
	recordIDPrefix      = "rec"
	provisionedIDPrefix = "pp"
)

// newResourceID produces "<prefix>-<12 lowercase letters>". Uniqueness is
// probabilistic only, there is no collision check against stored ids.
func newResourceID(prefix string) string {
	suffix := make([]byte, idSuffixLength)
	if _, err := rand.Read(suffix); err != nil {
		panic(err)
	}
	for i, b := range suffix {
		suffix[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return fmt.Sprintf("%s-%s", prefix, suffix)
}

func resourceARN(partition string, region string, accountID string, kind string, id string) string {
	return fmt.Sprintf("arn:%s:servicecatalog:%s:%s:%s/%s", partition, region, accountID, kind, id)
}
