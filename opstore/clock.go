package opstore

import "time"

var timeNow = time.Now
