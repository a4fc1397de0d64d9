package kafkaunauth

// Version is overridden at build time via -ldflags "-X github.com/lolocompany/kafka-unauth.Version=...".
var Version = "dev"
