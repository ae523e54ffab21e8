package internal

// Version is the naivetrans release version
const Version = "v0.3.0"
